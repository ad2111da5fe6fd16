package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daily-assistant/internal/app"
	"daily-assistant/internal/summary"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today's productivity summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, app.ModeCommand)
			if err != nil {
				return err
			}
			defer a.Close()

			sum := a.Tasks.Summary()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Completed %d of %d tasks today (%d%%)\n", sum.TasksCompleted, sum.TotalTasks, sum.Productivity)
			fmt.Fprintf(out, "Top category: %s\n", sum.TopCategory)
			for _, insight := range sum.Insights {
				fmt.Fprintf(out, "  • %s\n", insight)
			}
			if len(sum.UpcomingTasks) > 0 {
				fmt.Fprintln(out, "Upcoming:")
				for _, task := range sum.UpcomingTasks {
					fmt.Fprintf(out, "  %s  %s  %s\n", shortID(task.ID), task.Title, summary.FormatDate(task.DueDate.In(a.Location)))
				}
			}
			return nil
		},
	}
}
