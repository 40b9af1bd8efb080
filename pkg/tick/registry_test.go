package tick

import (
	"strings"
	"testing"

	"github.com/panplot/panplot/pkg/errors"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		spec    string
		in      float64
		want    string
		wantErr bool
	}{
		{spec: "auto", in: 0.500, want: "0.5"},
		{spec: "default", in: 3, want: "3"},
		{spec: "simple", in: -1.5, want: "−1.5"},
		{spec: "none", in: 42, want: ""},
		{spec: "null", in: 42, want: ""},
		{spec: "deglat", in: -45, want: "45°S"},
		{spec: "lon", in: 120, want: "120E"},
		{spec: "%.2f", in: 0.5, want: "0.50"},
		{spec: "%g units", in: 2, want: "2 units"},
		{spec: "DegLat", in: 45, want: "45°N"}, // case-insensitive
		{spec: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			f, err := NewFormatter(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeUnknownFormatter) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownFormatter)
				}
				if !strings.Contains(err.Error(), "options are") {
					t.Errorf("error %q does not list valid options", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFormatter(%q): %v", tt.spec, err)
			}
			if got := f.Format(tt.in); got != tt.want {
				t.Errorf("Format(%g) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewFormatterPi(t *testing.T) {
	f, err := NewFormatter("pi")
	if err != nil {
		t.Fatalf("NewFormatter(pi): %v", err)
	}
	if _, ok := f.(*FracFormatter); !ok {
		t.Errorf("formatter is %T, want *FracFormatter", f)
	}
}

func TestNewTicker(t *testing.T) {
	tests := []struct {
		name    string
		ticker  string
		args    []float64
		wantErr bool
	}{
		{name: "auto", ticker: "auto"},
		{name: "null", ticker: "null"},
		{name: "fixed", ticker: "fixed", args: []float64{1, 2, 3}},
		{name: "multiple", ticker: "multiple", args: []float64{2}},
		{name: "index defaults", ticker: "index"},
		{name: "index with offset", ticker: "index", args: []float64{1, 0.5}},
		{name: "linear", ticker: "linear", args: []float64{5}},
		{name: "log", ticker: "log"},
		{name: "log with subs", ticker: "log", args: []float64{10, 1, 2, 5}},
		{name: "symlog", ticker: "symlog", args: []float64{10, 2}},
		{name: "case-insensitive", ticker: "Fixed", args: []float64{1}},
		{name: "auto rejects args", ticker: "auto", args: []float64{1}, wantErr: true},
		{name: "fixed needs args", ticker: "fixed", wantErr: true},
		{name: "multiple needs one arg", ticker: "multiple", wantErr: true},
		{name: "multiple rejects zero step", ticker: "multiple", args: []float64{0}, wantErr: true},
		{name: "index rejects extra args", ticker: "index", args: []float64{1, 2, 3}, wantErr: true},
		{name: "linear needs two ticks", ticker: "linear", args: []float64{1}, wantErr: true},
		{name: "log rejects base one", ticker: "log", args: []float64{1}, wantErr: true},
		{name: "symlog rejects bad threshold", ticker: "symlog", args: []float64{10, -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicker(tt.ticker, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTicker(%q, %v): %v", tt.ticker, tt.args, err)
			}
			if tk == nil {
				t.Fatal("NewTicker returned a nil ticker")
			}
		})
	}
}

func TestNewTickerUnknown(t *testing.T) {
	_, err := NewTicker("bogus")
	if err == nil {
		t.Fatal("expected an error for an unknown ticker")
	}
	if !errors.Is(err, errors.ErrCodeUnknownTicker) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownTicker)
	}
	for _, want := range []string{"bogus", "options are", "fixed", "symlog"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	for _, names := range [][]string{FormatterNames(), TickerNames()} {
		for i := 1; i < len(names); i++ {
			if names[i-1] >= names[i] {
				t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
			}
		}
	}
}
