package domain

import "testing"

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		name     string
		links    LinkSet
		category Category
		shortest Role
		longest  Role
	}{
		{
			name:     "crank rocker with input shortest",
			links:    LinkSet{Frame: 200, Input: 80, Coupler: 180, Output: 140},
			category: CategoryCrankRocker,
			shortest: RoleInput,
			longest:  RoleFrame,
		},
		{
			name:     "crank rocker with output shortest",
			links:    LinkSet{Frame: 150, Input: 120, Coupler: 140, Output: 60},
			category: CategoryCrankRocker,
			shortest: RoleOutput,
			longest:  RoleFrame,
		},
		{
			name:     "double crank with frame shortest",
			links:    LinkSet{Frame: 50, Input: 100, Coupler: 120, Output: 110},
			category: CategoryDoubleCrank,
			shortest: RoleFrame,
			longest:  RoleCoupler,
		},
		{
			name:     "double rocker type one with coupler shortest",
			links:    LinkSet{Frame: 120, Input: 100, Coupler: 50, Output: 110},
			category: CategoryDoubleRockerI,
			shortest: RoleCoupler,
			longest:  RoleFrame,
		},
		{
			name:     "double rocker type two when grashof fails",
			links:    LinkSet{Frame: 120, Input: 110, Coupler: 105, Output: 100},
			category: CategoryDoubleRockerII,
			shortest: RoleOutput,
			longest:  RoleFrame,
		},
		{
			name:     "change point on exact equality",
			links:    LinkSet{Frame: 100, Input: 100, Coupler: 100, Output: 100},
			category: CategoryChangePoint,
			shortest: RoleFrame,
			longest:  RoleFrame,
		},
		{
			name:     "invalid when longest exceeds sum of others",
			links:    LinkSet{Frame: 50, Input: 10, Coupler: 10, Output: 10},
			category: CategoryInvalid,
			shortest: RoleInput,
			longest:  RoleFrame,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.links)
			if got.Category != c.category {
				t.Fatalf("category = %s, want %s", got.Category, c.category)
			}
			if got.Shortest != c.shortest {
				t.Errorf("shortest = %s, want %s", got.Shortest, c.shortest)
			}
			if got.Longest != c.longest {
				t.Errorf("longest = %s, want %s", got.Longest, c.longest)
			}
		})
	}
}

func TestClassifySpecExample(t *testing.T) {
	got := Classify(LinkSet{Frame: 200, Input: 80, Coupler: 180, Output: 140})

	if got.S != 80 {
		t.Errorf("S = %v, want 80", got.S)
	}
	if got.L != 200 {
		t.Errorf("L = %v, want 200", got.L)
	}
	if got.PQ != 320 {
		t.Errorf("PQ = %v, want 320", got.PQ)
	}
}

// Ties for shortest/longest resolve to the first role in the fixed scan
// order: frame, input, coupler, output.
func TestClassifyTieBreak(t *testing.T) {
	got := Classify(LinkSet{Frame: 100, Input: 100, Coupler: 90, Output: 100})
	if got.Shortest != RoleCoupler {
		t.Errorf("shortest = %s, want %s", got.Shortest, RoleCoupler)
	}
	if got.Longest != RoleFrame {
		t.Errorf("longest = %s, want %s (first of tied roles)", got.Longest, RoleFrame)
	}

	got = Classify(LinkSet{Frame: 80, Input: 80, Coupler: 120, Output: 120})
	if got.Shortest != RoleFrame {
		t.Errorf("shortest = %s, want %s (first of tied roles)", got.Shortest, RoleFrame)
	}
	if got.Longest != RoleCoupler {
		t.Errorf("longest = %s, want %s (first of tied roles)", got.Longest, RoleCoupler)
	}
}

func TestClassifyChangePointTolerance(t *testing.T) {
	// S+L = 150, P+Q = 150.005: inside the 0.01 band.
	got := Classify(LinkSet{Frame: 100, Input: 50.005, Coupler: 100, Output: 50})
	if got.Category != CategoryChangePoint {
		t.Fatalf("category = %s, want %s", got.Category, CategoryChangePoint)
	}

	// S+L = 150, P+Q = 150.02: outside the band, Grashof holds.
	got = Classify(LinkSet{Frame: 100, Input: 50.02, Coupler: 100, Output: 50})
	if got.Category != CategoryCrankRocker {
		t.Fatalf("category = %s, want %s", got.Category, CategoryCrankRocker)
	}
}

func TestCategoryLabels(t *testing.T) {
	for _, c := range []Category{
		CategoryInvalid,
		CategoryChangePoint,
		CategoryDoubleCrank,
		CategoryCrankRocker,
		CategoryDoubleRockerI,
		CategoryDoubleRockerII,
	} {
		if c.Label() == "" || c.Label() == string(c) {
			t.Errorf("category %s has no display label", c)
		}
	}
}
