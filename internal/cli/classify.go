package cli

import (
	"github.com/spf13/cobra"

	"github.com/mechkit/fourbar/internal/domain"
)

func classifyCmd() *cobra.Command {
	lf := &linkFlags{}
	var format string

	c := &cobra.Command{
		Use:   "classify",
		Short: "Classify a link set per the Grashof criterion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			links, err := lf.linkSet()
			if err != nil {
				return err
			}
			return printClass(cmd.OutOrStdout(), domain.Classify(links), format)
		},
	}

	lf.register(c)
	c.Flags().StringVar(&format, "format", formatText, `Output format: "text" or "json"`)
	return c
}
