package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechkit/fourbar/internal/domain"
)

func presetsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "presets",
		Short: "List configured mechanism presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, root, err := loadConfig()
			if err != nil {
				return err
			}

			if len(cfg.Presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no presets configured)")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config root: %s\n\n", root)
			for _, p := range cfg.Presets {
				cls := domain.Classify(p.Links)
				fmt.Fprintf(cmd.OutOrStdout(), "- %-14s frame=%.0f input=%.0f coupler=%.0f output=%.0f  (%s)\n",
					p.Name, p.Links.Frame, p.Links.Input, p.Links.Coupler, p.Links.Output, cls.Category.Label())
			}
			return nil
		},
	}
	return c
}
