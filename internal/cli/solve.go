package cli

import (
	"github.com/spf13/cobra"

	"github.com/mechkit/fourbar/internal/domain"
)

func solveCmd() *cobra.Command {
	lf := &linkFlags{}
	var angle float64
	var format string

	c := &cobra.Command{
		Use:   "solve",
		Short: "Compute joint positions at a crank angle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			links, err := lf.linkSet()
			if err != nil {
				return err
			}
			f := domain.Solve(links, angle)
			return printFrame(cmd.OutOrStdout(), angle, f, format)
		},
	}

	lf.register(c)
	c.Flags().Float64Var(&angle, "angle", 60, "Crank angle in degrees")
	c.Flags().StringVar(&format, "format", formatText, `Output format: "text" or "json"`)
	return c
}
