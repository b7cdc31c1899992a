package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soberlevi/notesync/internal/app"
	"github.com/soberlevi/notesync/internal/auth"
	"github.com/soberlevi/notesync/internal/gh"
	"github.com/soberlevi/notesync/internal/git"
	"github.com/soberlevi/notesync/internal/ui"
)

// uploadCmd represents "notesync upload"
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Commit and push the current directory to GitHub",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		content, _ := cmd.Flags().GetString("content")
		interactive, _ := cmd.Flags().GetBool("interactive")
		yes, _ := cmd.Flags().GetBool("yes")
		public, _ := cmd.Flags().GetBool("public")

		if content == "" && interactive && ui.IsInteractive() {
			c, err := ui.AskNoteContent()
			if err != nil {
				return err
			}
			content = c
		}

		hub := gh.NewShellGh()
		g := git.NewShellGit()
		resolver := auth.NewResolver(hub, cfg.TokenFile, cfg.TokenEnvVar)

		res, err := app.Upload(g, hub, resolver, cfg, app.UploadOptions{
			Content:   content,
			AssumeYes: yes,
			Public:    public,
		})
		if err != nil {
			return err
		}
		if res.Pushed {
			ui.Successf("Done!")
			if res.NoteFile != "" {
				ui.Infof("Uploaded meeting note to: %s", res.URL)
			} else {
				ui.Infof("Uploaded files to: %s", res.URL)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().String("content", "", "Meeting note content to save to a file before uploading")
	uploadCmd.Flags().BoolP("interactive", "i", false, "Open an editor for the note content")
	uploadCmd.Flags().Bool("yes", false, "Create the repository without asking")
	uploadCmd.Flags().Bool("public", false, "Create the repository public instead of private")
}
