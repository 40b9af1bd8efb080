package tick

import (
	"math"
	"strconv"
	"testing"
)

func TestAutoFormatter(t *testing.T) {
	tests := []struct {
		name string
		f    *AutoFormatter
		in   float64
		want string
	}{
		{"trims trailing zeros", NewAutoFormatter(), 0.500, "0.5"},
		{"integer stays bare", NewAutoFormatter(), 3, "3"},
		{"negative zero collapses", NewAutoFormatter(), math.Copysign(0, -1), "0"},
		{"negative value", NewAutoFormatter(), -2.5, "-2.5"},
		{"fixed precision trimmed", &AutoFormatter{ZeroTrim: true, Precision: 3, RangeMin: math.Inf(-1), RangeMax: math.Inf(1)}, 0.5, "0.5"},
		{"fixed precision kept", &AutoFormatter{Precision: 2, RangeMin: math.Inf(-1), RangeMax: math.Inf(1)}, 0.5, "0.50"},
		{"rounds at precision", &AutoFormatter{Precision: 1, RangeMin: math.Inf(-1), RangeMax: math.Inf(1)}, 0.25, "0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Format(tt.in); got != tt.want {
				t.Errorf("Format(%g) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAutoFormatterRange(t *testing.T) {
	f := NewAutoFormatter()
	f.RangeMin, f.RangeMax = 0, 5

	tests := []struct {
		in   float64
		want string
	}{
		{-1, ""},
		{0, "0"},
		{2.5, "2.5"},
		{5, "5"},
		{5.1, ""},
		// Round-off just past a boundary stays inside the |v|/1000 epsilon.
		{5.0001, "5.0001"},
	}

	for _, tt := range tests {
		if got := f.Format(tt.in); got != tt.want {
			t.Errorf("Format(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAutoFormatterAffixes(t *testing.T) {
	f := NewAutoFormatter()
	f.Prefix, f.Suffix = "$", "k"

	// The prefix lands after the sign, not before it.
	if got := f.Format(-3); got != "-$3k" {
		t.Errorf("Format(-3) = %q, want %q", got, "-$3k")
	}
	if got := f.Format(3); got != "$3k" {
		t.Errorf("Format(3) = %q, want %q", got, "$3k")
	}
}

func TestSimpleFormatter(t *testing.T) {
	tests := []struct {
		name string
		f    *SimpleFormatter
		in   float64
		want string
	}{
		{"plain", NewSimpleFormatter(), 0.5, "0.5"},
		{"unicode minus", NewSimpleFormatter(), -1.5, "−1.5"},
		{"negative zero collapses", NewSimpleFormatter(), math.Copysign(0, -1), "0"},
		{"precision rounds", &SimpleFormatter{Precision: 2}, 1.0 / 3, "0.33"},
		{"degree suffix", Deg(), -45, "−45°"},
		{"latitude south", DegLat(), -45, "45°S"},
		{"latitude north", DegLat(), 45, "45°N"},
		{"longitude west", DegLon(), -120, "120°W"},
		{"longitude east", Lon(), 120, "120E"},
		{"zero gets no cardinal", Lat(), 0, "0"},
		{"short negpos ignored", &SimpleFormatter{Precision: 6, NegPos: "S"}, 45, "45"},
		{"short negpos keeps sign", &SimpleFormatter{Precision: 6, NegPos: "S"}, -45, "−45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Format(tt.in); got != tt.want {
				t.Errorf("Format(%g) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFracFormatter(t *testing.T) {
	tests := []struct {
		name string
		f    *FracFormatter
		in   float64
		want string
	}{
		{"zero", Pi(), 0, "0"},
		{"unit multiple elides one", Pi(), math.Pi, "π"},
		{"negative unit", Pi(), -math.Pi, "−π"},
		{"half", Pi(), math.Pi / 2, "π/2"},
		{"negative half", Pi(), -math.Pi / 2, "−π/2"},
		{"three quarters", Pi(), 3 * math.Pi / 4, "3π/4"},
		{"whole multiple", Pi(), 2 * math.Pi, "2π"},
		{"three halves", Pi(), 1.5 * math.Pi, "3π/2"},
		{"euler", E(), math.E, "e"},
		{"plain fraction", NewFracFormatter("", 1), 0.75, "3/4"},
		{"plain integer", NewFracFormatter("", 1), 3, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Format(tt.in); got != tt.want {
				t.Errorf("Format(%g) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFracFormatterNonFinite(t *testing.T) {
	f := Pi()
	if got := f.Format(math.NaN()); got != "" {
		t.Errorf("Format(NaN) = %q, want suppressed label", got)
	}
	if got := f.Format(math.Inf(1)); got != "+Inf" {
		t.Errorf("Format(+Inf) = %q, want %q", got, "+Inf")
	}
	if got := f.Format(math.Inf(-1)); got != "−Inf" {
		t.Errorf("Format(-Inf) = %q, want %q", got, "−Inf")
	}

	// Beyond the denominator bound the fraction form is meaningless;
	// the value renders plainly instead.
	huge := math.Pi * 1e18
	if got := f.Format(huge); got != strconv.FormatFloat(huge, 'g', -1, 64) {
		t.Errorf("Format(%g) = %q, want plain rendering", huge, got)
	}
}

func TestApproxRationalNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e18} {
		num, den := approxRational(x, 1000000)
		if num != 0 || den != 1 {
			t.Errorf("approxRational(%g) = %d/%d, want 0/1", x, num, den)
		}
	}
}

func TestApproxRational(t *testing.T) {
	tests := []struct {
		x        float64
		num, den int64
	}{
		{0.5, 1, 2},
		{0.75, 3, 4},
		{-1.5, -3, 2},
		{3, 3, 1},
		{1.0 / 3, 1, 3},
	}

	for _, tt := range tests {
		num, den := approxRational(tt.x, 1000000)
		if num != tt.num || den != tt.den {
			t.Errorf("approxRational(%g) = %d/%d, want %d/%d", tt.x, num, den, tt.num, tt.den)
		}
	}
}

func TestNullFormatter(t *testing.T) {
	f := Null()
	for _, v := range []float64{-1, 0, 42} {
		if got := f.Format(v); got != "" {
			t.Errorf("Format(%g) = %q, want empty", v, got)
		}
	}
}
