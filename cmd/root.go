package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/config"
	"github.com/idolplan/idolplan/internal/logging"
)

// appConfig is loaded once before any subcommand runs
var appConfig *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "idolplan",
	Short: "Keep track of your card album and accessories for team building",
	Long: `Idolplan records which cards and accessories you own, in what upgrade
state, and hands that account to an external team optimizer.

Cards are named by lemmas such as 'honoka-ur1' (the first UR card of Honoka
in catalog order). Accounts are kept in a local library and can be exported
as text and pasted back in elsewhere.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		return logging.Setup(os.Stderr, level)
	},
}

func init() {
	RootCmd.PersistentFlags().StringP("account", "a", "", "Account from your library to work on (default from config)")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
}

// Execute runs the root command with ctx, which subcommands see as cmd.Context().
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}
