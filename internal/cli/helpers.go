package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mechkit/fourbar/internal/domain"
	"github.com/mechkit/fourbar/internal/infra/config"
	"github.com/mechkit/fourbar/internal/infra/configfinder"
)

// linkFlags binds the four link-length flags shared by every command that
// takes a mechanism on the command line.
type linkFlags struct {
	frame   float64
	input   float64
	coupler float64
	output  float64
}

func (lf *linkFlags) register(c *cobra.Command) {
	c.Flags().Float64Var(&lf.frame, "frame", 200, "Frame (ground) link length")
	c.Flags().Float64Var(&lf.input, "input", 80, "Input (crank) link length")
	c.Flags().Float64Var(&lf.coupler, "coupler", 180, "Coupler link length")
	c.Flags().Float64Var(&lf.output, "output", 140, "Output (follower) link length")
}

func (lf *linkFlags) linkSet() (domain.LinkSet, error) {
	links := domain.LinkSet{
		Frame:   lf.frame,
		Input:   lf.input,
		Coupler: lf.coupler,
		Output:  lf.output,
	}
	if err := links.Validate(); err != nil {
		return domain.LinkSet{}, &domain.OpError{
			Op:   "cli.flags",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}
	return links, nil
}

// loadConfig resolves the effective configuration: fourbar.yaml found
// upward from the working directory, or the built-in defaults. A present
// but broken file is an error; a missing one is not.
func loadConfig() (config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	finder := configfinder.NewFinder()
	root, err := finder.FindRoot(wd)
	if err != nil {
		return config.Default(), wd, nil
	}

	cfg, err := config.Load(filepath.Join(root, configfinder.ConfigFileName))
	if err != nil {
		return config.Config{}, root, err
	}
	return cfg, root, nil
}
