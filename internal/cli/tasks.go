package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daily-assistant/internal/app"
	"daily-assistant/internal/model"
	"daily-assistant/internal/service"
	"daily-assistant/internal/speech"
	"daily-assistant/internal/store"
	"daily-assistant/internal/summary"
)

// ErrVoiceDisabled is returned by "add --voice" when voice input is off.
var ErrVoiceDisabled = errors.New("voice input is disabled in settings")

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task; category and priority are assigned automatically",
		Long: `Add a task. With --voice the title is read from a transcript stream on
stdin, one fragment per line; lines starting with "~" are interim results.`,
		RunE: runAdd,
	}
	cmd.Flags().String("desc", "", "Task description")
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD or YYYY-MM-DD HH:MM")
	cmd.Flags().Bool("voice", false, "Dictate the title through stdin")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, app.ModeCommand)
	if err != nil {
		return err
	}
	defer a.Close()

	desc, _ := cmd.Flags().GetString("desc")
	dueRaw, _ := cmd.Flags().GetString("due")
	voice, _ := cmd.Flags().GetBool("voice")

	input := service.TaskInput{Title: strings.Join(args, " "), Description: desc}
	if voice {
		if !a.Settings.Get().VoiceInput {
			return ErrVoiceDisabled
		}
		rec := speech.NewLineRecognizer(cmd.InOrStdin())
		defer rec.Close()
		title, err := speech.Dictate(cmd.Context(), rec, func(text string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "… %s\n", text)
		})
		if err != nil {
			return fmt.Errorf("dictate title: %w", err)
		}
		input.Title = title
	}
	if dueRaw != "" {
		due, err := model.ParseDue(dueRaw, a.Location)
		if err != nil {
			return err
		}
		input.DueDate = &due
	}

	task, err := a.Tasks.CreateTask(cmd.Context(), input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s  %s  [%s, %s]\n", shortID(task.ID), task.Title, task.Category, task.Priority)
	return nil
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().String("filter", "all", "all, pending or completed")
	cmd.Flags().String("sort", "date", "date, priority or category")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	rawFilter, _ := cmd.Flags().GetString("filter")
	rawSort, _ := cmd.Flags().GetString("sort")
	filter, err := store.ParseFilter(rawFilter)
	if err != nil {
		return err
	}
	by, err := store.ParseSort(rawSort)
	if err != nil {
		return err
	}

	a, err := openApp(cmd, app.ModeCommand)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks := a.Tasks.ListTasks(filter, by)
	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}
	now := a.Store.Now()
	for _, task := range tasks {
		writeTask(out, task, now)
	}
	return nil
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task done, or pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, app.ModeCommand)
			if err != nil {
				return err
			}
			defer a.Close()

			task, err := a.Tasks.ToggleTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state := "pending"
			if task.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s is %s\n", shortID(task.ID), task.Title, state)
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task and its reminders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, app.ModeCommand)
			if err != nil {
				return err
			}
			defer a.Close()

			task, err := a.Tasks.DeleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s  %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
}

func writeTask(w io.Writer, task model.Task, now time.Time) {
	mark := "[ ]"
	if task.Completed {
		mark = "[x]"
	}
	fmt.Fprintf(w, "%s %s  %-6s  %-13s  %s\n", mark, shortID(task.ID), task.Priority, task.Category, task.Title)
	if task.DueDate != nil {
		due := task.DueDate.In(now.Location())
		fmt.Fprintf(w, "      due %s (%s)\n", summary.FormatDate(due), summary.FormatRelative(due, now))
	}
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
