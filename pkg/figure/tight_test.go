package figure

import (
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestTightGaps(t *testing.T) {
	g := NewGrid(1, 2)
	pads := []Pad{
		{Right: 10, Left: 4},
		{Left: 8, Right: 6},
	}
	if err := g.Tight(pads); err != nil {
		t.Fatalf("Tight: %v", err)
	}

	// Gap fits the right pad of the first cell plus the left pad of
	// the second.
	want := vg.Length(10 + 8 + DefaultTightPad)
	if g.WSpace[0] != want {
		t.Errorf("WSpace[0] = %v, want %v", g.WSpace[0], want)
	}

	// Margins fit the outermost pads.
	if g.Left != 4+DefaultTightPad {
		t.Errorf("Left = %v, want %v", g.Left, vg.Length(4+DefaultTightPad))
	}
	if g.Right != 6+DefaultTightPad {
		t.Errorf("Right = %v, want %v", g.Right, vg.Length(6+DefaultTightPad))
	}
}

func TestTightWorstRowWins(t *testing.T) {
	g := NewGrid(2, 2)
	pads := []Pad{
		{Right: 2}, {Left: 2},
		{Right: 20}, {Left: 1},
	}
	if err := g.Tight(pads); err != nil {
		t.Fatalf("Tight: %v", err)
	}
	if g.WSpace[0] != 21+DefaultTightPad {
		t.Errorf("WSpace[0] = %v, want %v", g.WSpace[0], vg.Length(21+DefaultTightPad))
	}
}

func TestTightRowGaps(t *testing.T) {
	g := NewGrid(2, 1)
	pads := []Pad{
		{Bottom: 12},
		{Top: 3},
	}
	if err := g.Tight(pads); err != nil {
		t.Fatalf("Tight: %v", err)
	}
	if g.HSpace[0] != 15+DefaultTightPad {
		t.Errorf("HSpace[0] = %v, want %v", g.HSpace[0], vg.Length(15+DefaultTightPad))
	}
}

func TestTightHonorsExplicitValues(t *testing.T) {
	g := NewGrid(1, 2)
	g.WSpace = []vg.Length{2 * vg.Inch}
	g.Left = vg.Inch

	pads := []Pad{{Right: 50, Left: 50}, {Left: 50}}
	if err := g.Tight(pads); err != nil {
		t.Fatalf("Tight: %v", err)
	}
	if g.WSpace[0] != 2*vg.Inch {
		t.Errorf("explicit gap changed to %v", g.WSpace[0])
	}
	if g.Left != vg.Inch {
		t.Errorf("explicit margin changed to %v", g.Left)
	}
	// Margins left automatic are still recomputed.
	if g.Right != DefaultTightPad {
		t.Errorf("Right = %v, want %v", g.Right, vg.Length(DefaultTightPad))
	}
}

func TestTightPadCountMismatch(t *testing.T) {
	g := NewGrid(2, 2)
	if err := g.Tight([]Pad{{}}); err == nil {
		t.Error("expected an error for a pad count mismatch")
	}
}

func TestTightThenSolve(t *testing.T) {
	g := NewGrid(1, 2)
	g.RefWidth = vg.Inch
	pads := []Pad{{Right: 10}, {Left: 10}}
	if err := g.Tight(pads); err != nil {
		t.Fatalf("Tight: %v", err)
	}
	geo, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	left := geo.Cell(0, 0)
	right := geo.Cell(0, 1)
	if gap := right.Min.X - left.Max.X; gap != 20+DefaultTightPad {
		t.Errorf("solved gap = %v, want %v", gap, vg.Length(20+DefaultTightPad))
	}
}
