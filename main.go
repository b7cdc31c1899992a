package main

import (
	"os"

	"github.com/soberlevi/notesync/cmd"
	"github.com/soberlevi/notesync/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}
