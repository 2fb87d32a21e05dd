// Package usecase holds the thin orchestration layer between the kinematic
// core and the shells: angle sweeps for range analysis and traces, and the
// animation player state advanced once per UI tick.
package usecase

import (
	"context"
	"errors"

	"github.com/mechkit/fourbar/internal/domain"
)

// SweepFrame is one sample of a sweep: the crank angle and the solved
// joint positions at that angle.
type SweepFrame struct {
	ThetaDeg float64
	Joints   domain.JointFrame
}

// Arc is a contiguous range of crank angles, in degrees.
type Arc struct {
	FromDeg float64
	ToDeg   float64
}

// SweepResult is the outcome of sampling the solver across an angle range.
type SweepResult struct {
	Frames []SweepFrame

	// InvalidArcs are the contiguous runs of sampled angles at which no
	// real assembly exists. For a crank the list is empty; for a rocker
	// it covers the arcs beyond the toggle positions.
	InvalidArcs []Arc

	// Trace is the coupler-point path (midpoint of BC) over the valid
	// samples, in sweep order.
	Trace []domain.Point
}

// Sweep samples the solver from fromDeg to toDeg inclusive in stepDeg
// increments. The links must already be validated; the step must be
// positive and the range non-empty.
func Sweep(ctx context.Context, links domain.LinkSet, fromDeg, toDeg, stepDeg float64) (SweepResult, error) {
	if stepDeg <= 0 {
		return SweepResult{}, &domain.OpError{
			Op:   "usecase.sweep",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("step must be positive"),
		}
	}
	if toDeg < fromDeg {
		return SweepResult{}, &domain.OpError{
			Op:   "usecase.sweep",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("empty angle range"),
		}
	}
	if err := links.Validate(); err != nil {
		return SweepResult{}, &domain.OpError{
			Op:   "usecase.sweep",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}

	n := int((toDeg-fromDeg)/stepDeg) + 1
	res := SweepResult{Frames: make([]SweepFrame, 0, n)}

	arcOpen := false
	var arcStart float64

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return SweepResult{}, err
		}

		theta := fromDeg + float64(i)*stepDeg
		f := domain.Solve(links, theta)
		res.Frames = append(res.Frames, SweepFrame{ThetaDeg: theta, Joints: f})

		if f.Valid {
			res.Trace = append(res.Trace, f.B.Midpoint(f.C))
			if arcOpen {
				res.InvalidArcs = append(res.InvalidArcs, Arc{FromDeg: arcStart, ToDeg: theta - stepDeg})
				arcOpen = false
			}
			continue
		}
		if !arcOpen {
			arcOpen = true
			arcStart = theta
		}
	}
	if arcOpen {
		res.InvalidArcs = append(res.InvalidArcs, Arc{FromDeg: arcStart, ToDeg: fromDeg + float64(n-1)*stepDeg})
	}

	return res, nil
}
