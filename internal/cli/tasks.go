package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/internal/model"
	"taskdeck/internal/tasklist"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))

	return cmd
}

type taskListOut struct {
	Tasks     []model.Task `json:"tasks"`
	Total     int          `json:"total"`
	Active    int          `json:"active"`
	Completed int          `json:"completed"`
}

func (o taskListOut) String() string {
	var b strings.Builder
	for _, t := range o.Tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		fmt.Fprintf(&b, "%s %d  %s\n", box, t.ID, t.Text)
	}
	fmt.Fprintf(&b, "%d total / %d active / %d done", o.Total, o.Active, o.Completed)
	return b.String()
}

func newTasksListCmd(app *App) *cobra.Command {
	var filterStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, ok := model.ParseFilter(filterStr)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown filter: %s (want all|active|completed)", filterStr))
			}
			list, cleanup, err := loadList(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			total, active, completed := list.Counts()
			return writeOut(cmd, app, taskListOut{
				Tasks:     list.Filtered(filter),
				Total:     total,
				Active:    active,
				Completed: completed,
			})
		},
	}
	cmd.Flags().StringVar(&filterStr, "filter", "all", "Filter (all|active|completed)")
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, cleanup, err := loadList(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			task, ok := list.Add(strings.Join(args, " "))
			if !ok {
				return writeErr(cmd, errors.New("task text is empty"))
			}
			return writeOut(cmd, app, task)
		},
	}
}

func newTasksToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			list, cleanup, err := loadList(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			if !list.Toggle(id) {
				return writeErr(cmd, errNotFound("task", id))
			}
			task, _ := list.Find(id)
			return writeOut(cmd, app, task)
		},
	}
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			list, cleanup, err := loadList(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			if !list.Delete(id) {
				return writeErr(cmd, errNotFound("task", id))
			}
			return writeOut(cmd, app, map[string]any{"deleted": id})
		},
	}
}

func loadList(app *App) (*tasklist.List, func(), error) {
	st, err := openStore(app)
	if err != nil {
		return nil, nil, err
	}
	return tasklist.Load(st), func() { _ = st.Close() }, nil
}

func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return id, nil
}
