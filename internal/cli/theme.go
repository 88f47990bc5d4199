package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdeck/internal/theme"
)

type themeOut struct {
	Theme string `json:"theme"`
}

func (o themeOut) String() string { return o.Theme }

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Print or change the persisted theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer st.Close()

			tc := theme.Load(st)
			if len(args) == 1 {
				switch args[0] {
				case "toggle":
					tc.Toggle()
				default:
					t, ok := theme.Parse(args[0])
					if !ok {
						return writeErr(cmd, fmt.Errorf("unknown theme: %s (want light|dark|toggle)", args[0]))
					}
					tc.Set(t)
				}
			}
			return writeOut(cmd, app, themeOut{Theme: string(tc.Theme())})
		},
	}
}
