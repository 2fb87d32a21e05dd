package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mechkit/fourbar/internal/infra/logger"
	"github.com/mechkit/fourbar/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var preset string

	cmd := &cobra.Command{
		Use:          "fourbar",
		Short:        "fourbar — interactive four-bar linkage explorer",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, root, err := loadConfig()
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Config: cfg,
				Logger: logger.L(),
				Preset: preset,
				Debug:  debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .fourbar/logs/fourbar.log")
	cmd.Flags().StringVar(&preset, "preset", "", "Preset to start from (see `fourbar presets`)")

	cmd.AddCommand(
		classifyCmd(),
		solveCmd(),
		sweepCmd(),
		svgCmd(),
		presetsCmd(),
		versionCmd(),
	)
	return cmd
}
