package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daily-assistant/internal/app"
	"daily-assistant/internal/model"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE:  runSettings,
	}
	cmd.Flags().String("theme", "", "light, dark or system")
	cmd.Flags().Bool("notifications", true, "Enable alerts")
	cmd.Flags().Bool("voice", true, "Enable voice input")
	cmd.Flags().String("summary-time", "", "Daily summary time, HH:MM")
	return cmd
}

func runSettings(cmd *cobra.Command, args []string) error {
	var patch model.SettingsPatch
	flags := cmd.Flags()
	if flags.Changed("theme") {
		v, _ := flags.GetString("theme")
		theme := model.Theme(v)
		patch.Theme = &theme
	}
	if flags.Changed("notifications") {
		v, _ := flags.GetBool("notifications")
		patch.Notifications = &v
	}
	if flags.Changed("voice") {
		v, _ := flags.GetBool("voice")
		patch.VoiceInput = &v
	}
	if flags.Changed("summary-time") {
		v, _ := flags.GetString("summary-time")
		patch.SummaryTime = &v
	}

	a, err := openApp(cmd, app.ModeCommand)
	if err != nil {
		return err
	}
	defer a.Close()

	settings, err := a.Settings.Update(cmd.Context(), patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "theme=%s notifications=%t voice=%t summary-time=%s\n",
		settings.Theme, settings.Notifications, settings.VoiceInput, settings.SummaryTime)
	return nil
}
