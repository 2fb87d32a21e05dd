package usecase

import (
	"math"

	"github.com/mechkit/fourbar/internal/domain"
)

// Player is the explicit animation state record: current crank angle,
// play direction, speed, and whether the loop is advancing. The shell
// calls Tick once per frame; all other timing concerns stay in the shell.
type Player struct {
	AngleDeg float64
	Dir      float64 // +1 or -1
	SpeedDeg float64 // degrees per second
	Playing  bool
}

// NewPlayer returns a paused player at the given start angle, sweeping
// forward at the given speed.
func NewPlayer(startDeg, speedDeg float64) Player {
	return Player{AngleDeg: startDeg, Dir: 1, SpeedDeg: speedDeg}
}

// Tick advances the crank by dt seconds and returns the joint frame to
// draw. When the next angle has no real assembly the player flips its
// direction and holds the current angle for this frame — a bounce off the
// rocker's toggle position, not an error path. When paused, Tick just
// solves at the current angle.
func (p *Player) Tick(links domain.LinkSet, dt float64) domain.JointFrame {
	if !p.Playing {
		return domain.Solve(links, p.AngleDeg)
	}

	next := normalizeDeg(p.AngleDeg + p.Dir*p.SpeedDeg*dt)
	f := domain.Solve(links, next)
	if !f.Valid {
		p.Dir = -p.Dir
		return domain.Solve(links, p.AngleDeg)
	}

	p.AngleDeg = next
	return f
}

// normalizeDeg wraps an angle into [0, 360) for display; the solver itself
// accepts any real angle.
func normalizeDeg(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
