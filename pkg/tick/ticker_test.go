package tick

import (
	"math"
	"testing"

	"gonum.org/v1/plot"
)

// values extracts the tick positions.
func values(ticks []plot.Tick) []float64 {
	vals := make([]float64, len(ticks))
	for i, t := range ticks {
		vals[i] = t.Value
	}
	return vals
}

// majors extracts the positions of labeled ticks only.
func majors(ticks []plot.Tick) []float64 {
	var vals []float64
	for _, t := range ticks {
		if t.Label != "" {
			vals = append(vals, t.Value)
		}
	}
	return vals
}

func equalFloats(got, want []float64, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			return false
		}
	}
	return true
}

func TestNullTicker(t *testing.T) {
	if got := NullTicker().Ticks(0, 10); got != nil {
		t.Errorf("Ticks(0, 10) = %v, want nil", got)
	}
}

func TestFixedTicker(t *testing.T) {
	tk := FixedTicker(3, 1, 2, -5)
	got := values(tk.Ticks(0, 2.5))
	want := []float64{1, 2}
	if !equalFloats(got, want, 0) {
		t.Errorf("Ticks(0, 2.5) = %v, want %v", got, want)
	}
	for _, tick := range tk.Ticks(0, 2.5) {
		if tick.Label == "" {
			t.Errorf("tick at %g has no label", tick.Value)
		}
	}
}

func TestMultipleTicker(t *testing.T) {
	got := values(MultipleTicker(0.5).Ticks(-1.2, 1.2))
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if !equalFloats(got, want, 1e-12) {
		t.Errorf("Ticks(-1.2, 1.2) = %v, want %v", got, want)
	}

	if got := MultipleTicker(-1).Ticks(0, 10); got != nil {
		t.Errorf("non-positive step: Ticks = %v, want nil", got)
	}
}

func TestMultipleTickerCapped(t *testing.T) {
	got := MultipleTicker(1e-9).Ticks(0, 1)
	if len(got) != maxTicks {
		t.Errorf("degenerate step produced %d ticks, want cap of %d", len(got), maxTicks)
	}
}

func TestIndexTicker(t *testing.T) {
	got := values(IndexTicker(1, 0.5).Ticks(0, 3))
	want := []float64{0.5, 1.5, 2.5}
	if !equalFloats(got, want, 1e-12) {
		t.Errorf("Ticks(0, 3) = %v, want %v", got, want)
	}
}

func TestLinearTicker(t *testing.T) {
	got := values(LinearTicker(5).Ticks(0, 1))
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if !equalFloats(got, want, 1e-12) {
		t.Errorf("Ticks(0, 1) = %v, want %v", got, want)
	}

	if got := LinearTicker(1).Ticks(0, 1); got != nil {
		t.Errorf("n < 2: Ticks = %v, want nil", got)
	}
}

func TestLogTickerDecades(t *testing.T) {
	ticks := LogTicker(10, nil).Ticks(1, 100)

	gotMajors := majors(ticks)
	want := []float64{1, 10, 100}
	if !equalFloats(gotMajors, want, 1e-9) {
		t.Errorf("major ticks = %v, want %v", gotMajors, want)
	}

	// Decade fill-in minors are unlabeled.
	var minorCount int
	for _, tick := range ticks {
		if tick.Label == "" {
			minorCount++
			if m := math.Mod(tick.Value, math.Pow(10, math.Floor(math.Log10(tick.Value)))); m != 0 {
				t.Errorf("minor tick at %g is not a decade multiple", tick.Value)
			}
		}
	}
	if minorCount != 16 {
		t.Errorf("minor count = %d, want 16 (2..9 and 20..90)", minorCount)
	}
}

func TestLogTickerSubs(t *testing.T) {
	ticks := LogTicker(10, []float64{1, 2, 5}).Ticks(1, 10)

	got := majors(ticks)
	want := []float64{1, 2, 5, 10}
	if !equalFloats(got, want, 1e-9) {
		t.Errorf("major ticks = %v, want %v", got, want)
	}
	if len(got) != len(ticks) {
		t.Error("custom subs must not add fill-in minors")
	}
}

func TestLogTickerRejectsNonPositiveRange(t *testing.T) {
	if got := LogTicker(10, nil).Ticks(-1, 100); got != nil {
		t.Errorf("Ticks(-1, 100) = %v, want nil", got)
	}
}

func TestMinorTicker(t *testing.T) {
	tk := MinorTicker(FixedTicker(0, 1, 2), MultipleTicker(0.5))
	ticks := tk.Ticks(0, 2)

	if got, want := majors(ticks), []float64{0, 1, 2}; !equalFloats(got, want, 0) {
		t.Errorf("majors = %v, want %v", got, want)
	}
	var minors []float64
	for _, tick := range ticks {
		if tick.Label == "" {
			minors = append(minors, tick.Value)
		}
	}
	// 0, 1 and 2 collide with majors and are dropped.
	if want := []float64{0.5, 1.5}; !equalFloats(minors, want, 0) {
		t.Errorf("minors = %v, want %v", minors, want)
	}
}

func TestSymLogTicker(t *testing.T) {
	got := values(SymLogTicker(10, 1).Ticks(-100, 100))
	want := []float64{-100, -10, -1, 0, 1, 10, 100}
	if !equalFloats(got, want, 1e-9) {
		t.Errorf("Ticks(-100, 100) = %v, want %v", got, want)
	}
}

func TestLabeled(t *testing.T) {
	l := Labeled{Ticker: FixedTicker(math.Pi / 2, math.Pi), Formatter: Pi()}
	ticks := l.Ticks(0, 4)
	if len(ticks) != 2 {
		t.Fatalf("got %d ticks, want 2", len(ticks))
	}
	if ticks[0].Label != "π/2" || ticks[1].Label != "π" {
		t.Errorf("labels = %q, %q, want %q, %q", ticks[0].Label, ticks[1].Label, "π/2", "π")
	}
}

func TestLabeledDemotesSuppressedTicks(t *testing.T) {
	f := NewAutoFormatter()
	f.RangeMax = 5
	l := Labeled{Ticker: FixedTicker(1, 10), Formatter: f}

	ticks := l.Ticks(0, 20)
	if len(ticks) != 2 {
		t.Fatalf("got %d ticks, want 2", len(ticks))
	}
	if ticks[0].Label != "1" {
		t.Errorf("ticks[0].Label = %q, want %q", ticks[0].Label, "1")
	}
	// Out of the formatter's range: demoted to a minor tick.
	if ticks[1].Label != "" {
		t.Errorf("ticks[1].Label = %q, want empty", ticks[1].Label)
	}
}

func TestLabeledLeavesMinorsAlone(t *testing.T) {
	l := Labeled{Ticker: LogTicker(10, nil), Formatter: Deg()}
	for _, tick := range l.Ticks(1, 100) {
		if tick.Label == "" {
			continue
		}
		if tick.Label[len(tick.Label)-len(degreeSign):] != degreeSign {
			t.Errorf("major tick at %g not reformatted: %q", tick.Value, tick.Label)
		}
	}
}
