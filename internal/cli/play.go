package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-timetravel/internal"
)

const debugLogFile = "tictactoe-debug.log"

func Play(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout belongs to the terminal UI, so logs only go to a file when debugging
			var w io.Writer = io.Discard
			if opts.conf.LogLevel == "debug" {
				file, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("failed to open debug log: %w", err)
				}
				defer file.Close()

				w = file
			}

			return application.RunGame(cmd.Context(), newLogger(w, opts.conf.LogLevel))
		},
	}
}
