package ui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks a yes/no question. Without a terminal it answers no, so that
// nothing destructive happens in scripts or CI.
func Confirm(message string) bool {
	if !IsInteractive() {
		return false
	}
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: message}, &ok); err != nil {
		return false
	}
	return ok
}

// AskNoteContent opens an editor form for the meeting note body.
func AskNoteContent() (string, error) {
	var content string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Meeting note").
				Description("Markdown body of the note to upload").
				Value(&content).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("note content cannot be empty")
					}
					return nil
				}),
		),
	).Run()
	return content, err
}
