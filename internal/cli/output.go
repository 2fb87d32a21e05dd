package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/mechkit/fourbar/internal/domain"
	"github.com/mechkit/fourbar/internal/usecase"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type classPayload struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Shortest string  `json:"shortest"`
	Longest  string  `json:"longest"`
	S        float64 `json:"s"`
	L        float64 `json:"l"`
	PQ       float64 `json:"pq"`
}

func printClass(w io.Writer, cls domain.MechanismClass, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, classPayload{
			Category: string(cls.Category),
			Label:    cls.Category.Label(),
			Shortest: string(cls.Shortest),
			Longest:  string(cls.Longest),
			S:        cls.S,
			L:        cls.L,
			PQ:       cls.PQ,
		})
	case formatText:
		fmt.Fprintln(w, cls.Category.Label())
		fmt.Fprintf(w, "  shortest: %s (%.1f)\n", cls.Shortest, cls.S)
		fmt.Fprintf(w, "  longest:  %s (%.1f)\n", cls.Longest, cls.L)
		fmt.Fprintf(w, "  S+L:      %.1f\n", cls.S+cls.L)
		fmt.Fprintf(w, "  P+Q:      %.1f\n", cls.PQ)
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

type pointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type framePayload struct {
	ThetaDeg float64       `json:"theta_deg"`
	Valid    bool          `json:"valid"`
	A        pointPayload  `json:"a"`
	B        pointPayload  `json:"b"`
	C        *pointPayload `json:"c,omitempty"`
	D        pointPayload  `json:"d"`
}

func framePayloadFrom(thetaDeg float64, f domain.JointFrame) framePayload {
	p := framePayload{
		ThetaDeg: thetaDeg,
		Valid:    f.Valid,
		A:        pointPayload{f.A.X, f.A.Y},
		B:        pointPayload{f.B.X, f.B.Y},
		D:        pointPayload{f.D.X, f.D.Y},
	}
	// NaN has no JSON encoding; C is simply absent on invalid frames.
	if f.Valid && !math.IsNaN(f.C.X) {
		p.C = &pointPayload{f.C.X, f.C.Y}
	}
	return p
}

func printFrame(w io.Writer, thetaDeg float64, f domain.JointFrame, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, framePayloadFrom(thetaDeg, f))
	case formatText:
		if !f.Valid {
			fmt.Fprintf(w, "no assembly at %.1f°\n", thetaDeg)
			fmt.Fprintf(w, "  A: (%.2f, %.2f)\n", f.A.X, f.A.Y)
			fmt.Fprintf(w, "  B: (%.2f, %.2f)\n", f.B.X, f.B.Y)
			fmt.Fprintf(w, "  D: (%.2f, %.2f)\n", f.D.X, f.D.Y)
			return nil
		}
		fmt.Fprintf(w, "theta: %.1f°\n", thetaDeg)
		fmt.Fprintf(w, "  A: (%.2f, %.2f)\n", f.A.X, f.A.Y)
		fmt.Fprintf(w, "  B: (%.2f, %.2f)\n", f.B.X, f.B.Y)
		fmt.Fprintf(w, "  C: (%.2f, %.2f)\n", f.C.X, f.C.Y)
		fmt.Fprintf(w, "  D: (%.2f, %.2f)\n", f.D.X, f.D.Y)
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

type arcPayload struct {
	FromDeg float64 `json:"from_deg"`
	ToDeg   float64 `json:"to_deg"`
}

type sweepPayload struct {
	Samples     int            `json:"samples"`
	Valid       int            `json:"valid"`
	InvalidArcs []arcPayload   `json:"invalid_arcs"`
	Frames      []framePayload `json:"frames"`
}

func printSweep(w io.Writer, res usecase.SweepResult, format string, withFrames bool) error {
	validCount := 0
	for _, f := range res.Frames {
		if f.Joints.Valid {
			validCount++
		}
	}

	switch format {
	case formatJSON:
		p := sweepPayload{
			Samples:     len(res.Frames),
			Valid:       validCount,
			InvalidArcs: make([]arcPayload, 0, len(res.InvalidArcs)),
		}
		for _, a := range res.InvalidArcs {
			p.InvalidArcs = append(p.InvalidArcs, arcPayload{a.FromDeg, a.ToDeg})
		}
		if withFrames {
			p.Frames = make([]framePayload, 0, len(res.Frames))
			for _, f := range res.Frames {
				p.Frames = append(p.Frames, framePayloadFrom(f.ThetaDeg, f.Joints))
			}
		}
		return writeJSON(w, p)
	case formatText:
		fmt.Fprintf(w, "%d samples, %d valid\n", len(res.Frames), validCount)
		if len(res.InvalidArcs) == 0 {
			fmt.Fprintln(w, "no invalid arcs: the crank rotates fully")
			return nil
		}
		fmt.Fprintln(w, "invalid arcs:")
		for _, a := range res.InvalidArcs {
			fmt.Fprintf(w, "  %.1f° → %.1f°\n", a.FromDeg, a.ToDeg)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
