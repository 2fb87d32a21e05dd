package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mechkit/fourbar/internal/domain"
	"github.com/mechkit/fourbar/internal/infra/svgrender"
	"github.com/mechkit/fourbar/internal/usecase"
)

func svgCmd() *cobra.Command {
	lf := &linkFlags{}
	var angle float64
	var trace bool
	var out string
	var width, height int

	c := &cobra.Command{
		Use:   "svg",
		Short: "Render the mechanism to an SVG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			links, err := lf.linkSet()
			if err != nil {
				return err
			}

			opts := svgrender.Options{Width: width, Height: height}
			if trace {
				res, err := usecase.Sweep(cmd.Context(), links, 0, 360, 2)
				if err != nil {
					return err
				}
				opts.Trace = res.Trace
			}

			data := svgrender.Render(links, angle, opts)
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return &domain.OpError{
					Op:   "cli.svg",
					Kind: domain.KindExecution,
					Path: out,
					Err:  err,
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	lf.register(c)
	c.Flags().Float64Var(&angle, "angle", 60, "Crank angle in degrees")
	c.Flags().BoolVar(&trace, "trace", false, "Overlay the coupler-point path")
	c.Flags().StringVarP(&out, "out", "o", "fourbar.svg", "Output file")
	c.Flags().IntVar(&width, "width", 640, "Document width in pixels")
	c.Flags().IntVar(&height, "height", 480, "Document height in pixels")
	return c
}
