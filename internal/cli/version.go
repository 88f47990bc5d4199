package cli

import (
	"github.com/spf13/cobra"
)

// Version is set via -ldflags at release time.
var Version = "0.1.0-dev"

type versionOut struct {
	Version string `json:"version"`
}

func (o versionOut) String() string { return "taskdeck " + o.Version }

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the taskdeck version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, versionOut{Version: Version})
		},
	}
}
