package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daily-assistant/internal/app"
	"daily-assistant/internal/model"
	"daily-assistant/internal/summary"
)

func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind <task-id> <YYYY-MM-DD HH:MM>",
		Short: "Schedule a one-shot reminder for a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, _ := cmd.Flags().GetString("message")

			a, err := openApp(cmd, app.ModeCommand)
			if err != nil {
				return err
			}
			defer a.Close()

			at, err := model.ParseDue(args[1], a.Location)
			if err != nil {
				return err
			}
			reminder, err := a.Tasks.AddReminder(cmd.Context(), args[0], at, message)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reminder %s set for %s\n", shortID(reminder.ID), summary.FormatDate(reminder.Time))
			return nil
		},
	}
	cmd.Flags().StringP("message", "m", "", "Reminder text; defaults to the task title")
	return cmd
}
