package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soberlevi/notesync/internal/config"
	"github.com/soberlevi/notesync/internal/ui"
)

var (
	cfg config.Config

	repoFlag      string
	branchFlag    string
	tokenFileFlag string
	verboseFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "notesync",
	Short: "Push meeting notes to a GitHub repository",
	Long: `notesync commits and pushes the current directory to a GitHub
repository, bootstrapping authentication from an existing gh session, a
token file, or the environment. Use 'verify' to check a stored token.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		if repoFlag != "" {
			if err := cfg.SetRepo(repoFlag); err != nil {
				return err
			}
		}
		if branchFlag != "" {
			cfg.Branch = branchFlag
		}
		if tokenFileFlag != "" {
			cfg.TokenFile = tokenFileFlag
		}

		logrus.SetLevel(logrus.WarnLevel)
		if verboseFlag || cfg.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "Target repository as owner/name")
	rootCmd.PersistentFlags().StringVar(&branchFlag, "branch", "", "Branch to pull from and push to")
	rootCmd.PersistentFlags().StringVar(&tokenFileFlag, "token-file", "", "Path to the token file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.SetUsageTemplate(ui.ColorHeadings(rootCmd.UsageTemplate()))
}

// Execute is the root entrypoint
func Execute() error {
	return rootCmd.Execute()
}
