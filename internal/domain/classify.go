package domain

import "math"

// changePointTolerance is the absolute tolerance, in the same units as the
// link lengths, under which S+L and P+Q are considered equal.
const changePointTolerance = 0.01

// Classify applies the Grashof criterion to the link set.
//
// The shortest (S) and longest (L) roles come from a stable linear scan in
// the order frame, input, coupler, output, so ties resolve to the first
// role encountered. P+Q is the sum of the remaining two lengths.
//
// Ordering of the checks matters: assembly feasibility first (L greater
// than the sum of the other three means no closed linkage exists at any
// angle), then the change-point band, then the Grashof sub-cases keyed on
// which role holds S.
func Classify(links LinkSet) MechanismClass {
	shortest := roleOrder[0]
	longest := roleOrder[0]
	for _, r := range roleOrder[1:] {
		if links.Length(r) < links.Length(shortest) {
			shortest = r
		}
		if links.Length(r) > links.Length(longest) {
			longest = r
		}
	}

	s := links.Length(shortest)
	l := links.Length(longest)
	total := links.Frame + links.Input + links.Coupler + links.Output
	pq := total - s - l

	cls := MechanismClass{
		Shortest: shortest,
		Longest:  longest,
		S:        s,
		L:        l,
		PQ:       pq,
	}

	switch {
	case l > s+pq:
		cls.Category = CategoryInvalid
	case math.Abs((s+l)-pq) < changePointTolerance:
		cls.Category = CategoryChangePoint
	case s+l < pq:
		switch shortest {
		case RoleFrame:
			cls.Category = CategoryDoubleCrank
		case RoleCoupler:
			cls.Category = CategoryDoubleRockerI
		default: // input or output
			cls.Category = CategoryCrankRocker
		}
	default:
		cls.Category = CategoryDoubleRockerII
	}

	return cls
}
