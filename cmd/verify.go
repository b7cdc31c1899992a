package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soberlevi/notesync/internal/app"
	"github.com/soberlevi/notesync/internal/auth"
	"github.com/soberlevi/notesync/internal/gh"
)

// verifyCmd represents "notesync verify"
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the stored GitHub token's validity and scopes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		resolver := auth.NewResolver(gh.NewShellGh(), cfg.TokenFile, cfg.TokenEnvVar)
		return app.VerifyToken(resolver, cfg)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
