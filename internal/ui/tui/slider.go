package tui

import (
	"fmt"
	"strings"
)

// slider is a horizontal value control bound to an inclusive range.
type slider struct {
	label string
	value float64
	min   float64
	max   float64
	step  float64
	unit  string
}

// coarseFactor scales step size while shift is held.
const coarseFactor = 5

func (s *slider) inc(coarse bool) { s.setValue(s.value + s.delta(coarse)) }
func (s *slider) dec(coarse bool) { s.setValue(s.value - s.delta(coarse)) }

func (s *slider) delta(coarse bool) float64 {
	if coarse {
		return s.step * coarseFactor
	}
	return s.step
}

func (s *slider) setValue(v float64) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.value = v
}

// view renders "label  value  track" with the thumb positioned
// proportionally; trackWidth is the character budget for the track alone.
func (s *slider) view(trackWidth int, focused bool, th Theme) string {
	if trackWidth < 3 {
		trackWidth = 3
	}

	pos := 0
	if s.max > s.min {
		pos = int(float64(trackWidth-1) * (s.value - s.min) / (s.max - s.min))
	}
	if pos > trackWidth-1 {
		pos = trackWidth - 1
	}

	thumb := "○"
	if focused {
		thumb = "●"
	}
	track := strings.Repeat("─", pos) + thumb + strings.Repeat("─", trackWidth-1-pos)

	line := fmt.Sprintf("%-8s %7.1f%s  %s", s.label, s.value, s.unit, track)
	if focused {
		return th.Focused.Render(line)
	}
	return line
}
