// Package cli implements the daily-assistant command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daily-assistant/internal/app"
	"daily-assistant/internal/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "daily-assistant",
		Short: "Personal task tracker with reminders and daily summaries",
		Long: `daily-assistant sorts tasks into categories and priorities, reminds you
about them and reports how productive the day was.

Run "daily-assistant serve" for the Telegram bot, the HTTP API and the
reminder monitor, or use the other commands for quick edits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (yaml, json or toml)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newToggleCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newRemindCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newExportCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd := newRootCmd()
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func openApp(cmd *cobra.Command, mode app.Mode) (*app.App, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return app.New(cmd.Context(), cfg, mode)
}
