package cmd

import (
	"github.com/spf13/cobra"
)

type args struct {
	version    string
	LogLevel   string
	ConfigPath string
	TextFormat bool
}

// InitCommands initializes and returns the root command for the application.
func InitCommands(version string) *cobra.Command {
	args := &args{
		version: version,
	}

	cmd := &cobra.Command{
		Use:   "sixfactors",
		Short: "Six Factors questionnaire webhook",
		Long:  "Webhook backend serving the six factors personality questionnaire to a chat platform.",
	}

	cmd.PersistentFlags().StringVar(&args.ConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&args.LogLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&args.TextFormat, "logtext", false, "log in text format, otherwise JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "server",
		Short: "Start the webhook server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), args)
		},
	})

	return cmd
}
