package domain

import "math"

// Solve computes the joint positions of the linkage at the given crank
// angle (degrees, any real value; the solver does not normalize it).
//
// A is placed at the origin and D at (Frame, 0); B travels the circle of
// radius Input around A. C is found by intersecting the coupler circle
// around B with the output circle around D, keeping the elbow-down branch:
// the direction from D to B minus the triangle angle at D. Always taking
// the same branch keeps C continuous across an animation sweep.
//
// When B is too far from (or too close to) D for the coupler and output to
// meet, no real assembly exists: the frame comes back with Valid=false,
// A, B, D populated, and C set to NaN. Coincident B and D is treated the
// same way since the triangle at D loses its meaning there.
func Solve(links LinkSet, thetaDegrees float64) JointFrame {
	theta := Radians(thetaDegrees)

	a := Point{0, 0}
	d := Point{links.Frame, 0}
	b := Point{
		X: links.Input * math.Cos(theta),
		Y: links.Input * math.Sin(theta),
	}

	distBD := b.Dist(d)

	lo := math.Abs(links.Coupler - links.Output)
	hi := links.Coupler + links.Output
	if distBD <= 0 || distBD < lo || distBD > hi {
		return JointFrame{
			A: a,
			B: b,
			C: Point{math.NaN(), math.NaN()},
			D: d,
		}
	}

	// Law of cosines on triangle B-D-C for the angle at D. Clamp the
	// cosine to absorb floating-point overshoot at the tangent limits,
	// where distBD sits exactly on the edge of the valid window.
	cosAlpha := (links.Output*links.Output + distBD*distBD - links.Coupler*links.Coupler) /
		(2 * links.Output * distBD)
	cosAlpha = clamp(cosAlpha, -1, 1)
	alpha := math.Acos(cosAlpha)

	dirDB := d.AngleTo(b)
	phi := dirDB - alpha

	c := Point{
		X: d.X + links.Output*math.Cos(phi),
		Y: d.Y + links.Output*math.Sin(phi),
	}

	return JointFrame{A: a, B: b, C: c, D: d, Valid: true}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
