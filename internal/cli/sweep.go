package cli

import (
	"github.com/spf13/cobra"

	"github.com/mechkit/fourbar/internal/usecase"
)

func sweepCmd() *cobra.Command {
	lf := &linkFlags{}
	var from, to, step float64
	var format string
	var withFrames bool

	c := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the crank and report the mechanism's motion range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			links, err := lf.linkSet()
			if err != nil {
				return err
			}

			res, err := usecase.Sweep(cmd.Context(), links, from, to, step)
			if err != nil {
				return err
			}
			return printSweep(cmd.OutOrStdout(), res, format, withFrames)
		},
	}

	lf.register(c)
	c.Flags().Float64Var(&from, "from", 0, "Sweep start angle in degrees")
	c.Flags().Float64Var(&to, "to", 360, "Sweep end angle in degrees")
	c.Flags().Float64Var(&step, "step", 1, "Sweep step in degrees")
	c.Flags().StringVar(&format, "format", formatText, `Output format: "text" or "json"`)
	c.Flags().BoolVar(&withFrames, "frames", false, "Include every sampled frame in JSON output")
	return c
}
