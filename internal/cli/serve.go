package cli

import (
	"os"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-timetravel/internal"
)

func Serve(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over REST and WebSocket",
		Args:  cobra.NoArgs,

		RunE: func(_ *cobra.Command, _ []string) error {
			return application.RunApp(newLogger(os.Stdout, opts.conf.LogLevel), opts.conf)
		},
	}
}
