package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/crazywolf132/termchroma"
)

var (
	green  string = ""
	red    string = ""
	yellow string = ""
	blue   string = ""

	bold  string = termchroma.Bold
	reset string = termchroma.Reset
)

// Colors
func Green(s string) string  { return green + s + reset }
func Red(s string) string    { return red + s + reset }
func Yellow(s string) string { return yellow + s + reset }

// Infof prints a plain status line.
func Infof(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Successf prints a status line with a green check mark.
func Successf(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Green("✓"), fmt.Sprintf(format, args...))
}

// Warnf prints a warning to stderr.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, Yellow("Warning: ")+format+"\n", args...)
}

// Errorf prints an error to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, Red("Error: ")+format+"\n", args...)
}

// ColorHeadings colorizes cobra usage-template headings.
func ColorHeadings(text string) string {
	headings := []string{
		"Usage:",
		"Examples:",
		"Available Commands:",
		"Flags:",
		"Aliases:",
		"Additional Commands:",
	}
	for _, heading := range headings {
		text = strings.ReplaceAll(text, heading, fmt.Sprintf("%s%s%s%s", blue, bold, heading, reset))
	}
	return text
}

func init() {
	green, _ = termchroma.ANSIForeground("#98C379")
	red, _ = termchroma.ANSIForeground("#FF707E")
	yellow, _ = termchroma.ANSIForeground("#FFC402")
	blue, _ = termchroma.ANSIForeground("#59B4FF")
}
