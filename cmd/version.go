package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soberlevi/notesync/internal/version"
)

// versionCmd represents "notesync version"
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of notesync",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notesync version %s\n", version.Get())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
