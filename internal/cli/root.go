package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
)

const defaultConfigFile = "config.yml"

type options struct {
	configPath string
	conf       *config.Config
}

func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe with move history and time travel",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cmd.Flag("debug").Changed {
				conf.LogLevel = "debug"
			}

			opts.conf = conf

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "Path to the config file")
	root.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	play := Play(opts)
	root.RunE = play.RunE

	root.AddCommand(play)
	root.AddCommand(Serve(opts))

	return root
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return defaultConfigFile
	}

	return filepath.Join(baseDir, defaultConfigFile)
}
