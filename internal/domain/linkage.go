package domain

import (
	"errors"
	"fmt"
	"math"
)

// Role identifies the structural role a link plays in the mechanism.
type Role string

const (
	RoleFrame   Role = "frame"   // fixed ground link between joints A and D
	RoleInput   Role = "input"   // crank, driven link at A
	RoleCoupler Role = "coupler" // floating link between B and C
	RoleOutput  Role = "output"  // follower link at D
)

// roleOrder is the canonical scan order. Ties for shortest/longest resolve
// to the first role encountered in this order.
var roleOrder = [4]Role{RoleFrame, RoleInput, RoleCoupler, RoleOutput}

// Roles returns the four roles in canonical order.
func Roles() [4]Role { return roleOrder }

// LinkSet is an immutable snapshot of the four link lengths. The core
// assumes positive finite lengths; Validate is the guard shells call
// before handing user input to Solve or Classify.
type LinkSet struct {
	Frame   float64
	Input   float64
	Coupler float64
	Output  float64
}

// Length returns the length of the link holding the given role.
func (ls LinkSet) Length(r Role) float64 {
	switch r {
	case RoleFrame:
		return ls.Frame
	case RoleInput:
		return ls.Input
	case RoleCoupler:
		return ls.Coupler
	case RoleOutput:
		return ls.Output
	}
	return 0
}

// Validate reports whether every length is positive and finite.
func (ls LinkSet) Validate() error {
	for _, r := range roleOrder {
		v := ls.Length(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s length %v: %w", r, v, ErrInvalidLength)
		}
		if v <= 0 {
			return fmt.Errorf("%s length %v must be positive: %w", r, v, ErrInvalidLength)
		}
	}
	return nil
}

// ErrInvalidLength marks a link length the core cannot accept.
var ErrInvalidLength = errors.New("invalid link length")

// JointFrame holds the four joint positions for one crank angle.
//
// A and D sit on the fixed baseline: A at the origin, D at (Frame, 0),
// independent of the angle. B and C are derived. When Valid is false no
// real assembly exists at that angle; A, B, and D are still populated and
// C carries NaN coordinates so accidental use poisons downstream math
// instead of drawing a phantom joint at the origin.
type JointFrame struct {
	A Point
	B Point
	C Point
	D Point

	Valid bool
}

// Category classifies a link set under the Grashof criterion.
type Category string

const (
	// CategoryInvalid: the longest link exceeds the sum of the other
	// three, so the loop cannot close at any angle.
	CategoryInvalid Category = "invalid"
	// CategoryChangePoint: S+L equals P+Q within tolerance; the linkage
	// can momentarily become collinear.
	CategoryChangePoint Category = "change_point"
	// CategoryDoubleCrank: Grashof with the frame shortest; both links
	// adjacent to the frame rotate fully (drag-link).
	CategoryDoubleCrank Category = "double_crank"
	// CategoryCrankRocker: Grashof with the input or output shortest.
	CategoryCrankRocker Category = "crank_rocker"
	// CategoryDoubleRockerI: Grashof with the coupler shortest; the
	// coupler fully rotates relative to its neighbors while input and
	// output only oscillate.
	CategoryDoubleRockerI Category = "double_rocker_1"
	// CategoryDoubleRockerII: non-Grashof; no link achieves a full
	// revolution.
	CategoryDoubleRockerII Category = "double_rocker_2"
)

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryInvalid:
		return "Invalid (cannot assemble)"
	case CategoryChangePoint:
		return "Change Point"
	case CategoryDoubleCrank:
		return "Double-Crank"
	case CategoryCrankRocker:
		return "Crank-Rocker"
	case CategoryDoubleRockerI:
		return "Double-Rocker (Type I)"
	case CategoryDoubleRockerII:
		return "Double-Rocker (Type II)"
	}
	return string(c)
}

// MechanismClass is the result of classifying a LinkSet: the category plus
// which role holds the shortest and longest link, for labeling and
// highlighting. S, L, and PQ echo the sums the classification used.
type MechanismClass struct {
	Category Category

	Shortest Role
	Longest  Role

	S  float64 // shortest length
	L  float64 // longest length
	PQ float64 // sum of the two remaining lengths
}
