package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/internal/directory"
	"taskdeck/internal/format"
	"taskdeck/internal/store"
	"taskdeck/internal/theme"
	"taskdeck/internal/tui"
)

type App struct {
	Dir        string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "Local-first to-do list with a remote users panel",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskdeck

  # Scriptable commands
  taskdeck tasks add Buy milk
  taskdeck tasks list --filter active --format json
  taskdeck users --search ann --page 2
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKDECK_DIR", ""), "Path to data dir (default: ~/.taskdeck; use for fixtures/tests)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKDECK_FORMAT", "text"), "Output format (text|json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

func runTUI(app *App) error {
	st, err := openStore(app)
	if err != nil {
		return err
	}
	defer st.Close()
	return tui.Run(st, theme.Load(st), newDirectoryClient())
}

func openStore(app *App) (*store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return store.Open(context.Background(), dir)
}

func newDirectoryClient() *directory.Client {
	c := directory.NewClient()
	c.BaseURL = envOr("TASKDECK_USERS_URL", directory.DefaultBaseURL)
	return c
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func errNotFound(kind string, id any) error {
	return fmt.Errorf("%s %v not found", kind, id)
}
