package cli

import (
	"testing"

	"github.com/panplot/panplot/pkg/rc"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid all", []string{"svg", "png", "pdf", "eps", "tif"}, false},
		{"invalid format", []string{"bmp"}, true},
		{"mixed valid invalid", []string{"svg", "bmp"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		fallback string
		want     string
	}{
		{"empty output uses fallback", "", "panplot_demo", "panplot_demo"},
		{"strips known extension", "figure.svg", "x", "figure"},
		{"keeps unknown extension", "figure.data", "x", "figure.data"},
		{"bare name passes through", "figure", "x", "figure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.fallback); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestDemoPlot(t *testing.T) {
	opts := &demoOpts{min: 0.1, max: 10}

	p, err := demoPlot("log", "a. log", opts)
	if err != nil {
		t.Fatalf("demoPlot: %v", err)
	}
	if p.Title.Text != "a. log" {
		t.Errorf("title = %q, want %q", p.Title.Text, "a. log")
	}
	if p.X.Scale == nil {
		t.Error("demo plot should carry the scale's normalizer")
	}
	if p.X.Min <= 0 {
		t.Errorf("X.Min = %g, want clamped positive for a log axis", p.X.Min)
	}

	if _, err := demoPlot("banana", "", opts); err == nil {
		t.Error("unknown scale must error")
	}
}

func TestDemoPlotOverrides(t *testing.T) {
	opts := &demoOpts{min: 0, max: 10, ticker: "multiple 2", formatter: "%.1f"}
	// Ticker names carry no arguments through flags; a bad name errors.
	if _, err := demoPlot("linear", "", opts); err == nil {
		t.Error("malformed ticker override must error")
	}

	opts = &demoOpts{min: 0, max: 10, ticker: "auto", formatter: "%.1f"}
	p, err := demoPlot("linear", "", opts)
	if err != nil {
		t.Fatalf("demoPlot: %v", err)
	}
	ticks := p.X.Tick.Marker.Ticks(0, 10)
	for _, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		if len(tk.Label) < 3 || tk.Label[len(tk.Label)-2] != '.' {
			t.Errorf("tick label %q not in %%.1f form", tk.Label)
		}
	}
}

func TestDemoGridPlots(t *testing.T) {
	opts := &demoOpts{min: 0.1, max: 10}
	cfg := rc.Default()
	cfg.ABC.Style = "a."

	plots, err := demoGridPlots(opts, cfg)
	if err != nil {
		t.Fatalf("demoGridPlots: %v", err)
	}
	if len(plots) != 4 {
		t.Fatalf("got %d plots, want 4", len(plots))
	}
	for i, prefix := range []string{"a. ", "b. ", "c. ", "d. "} {
		if got := plots[i].Title.Text; len(got) < 3 || got[:3] != prefix {
			t.Errorf("plots[%d] title = %q, want %q prefix", i, got, prefix)
		}
	}
	// Default sharing clears interior labels: the top row loses its x
	// labels, the right column its y labels.
	if plots[0].X.Label.Text != "" || plots[1].X.Label.Text != "" {
		t.Error("top-row x labels should be cleared")
	}
	if plots[2].X.Label.Text == "" || plots[3].X.Label.Text == "" {
		t.Error("bottom-row x labels should survive")
	}
	if plots[1].Y.Label.Text != "" || plots[3].Y.Label.Text != "" {
		t.Error("right-column y labels should be cleared")
	}

	cfg.ABC.Location = "middle"
	if _, err := demoGridPlots(opts, cfg); err == nil {
		t.Error("unknown label location must error")
	}
}
