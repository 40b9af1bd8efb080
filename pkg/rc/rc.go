// Package rc loads runtime configuration from TOML files. Settings
// cover the defaults consulted elsewhere: tick formatting, panel
// labels, reference sizing, axis sharing and unit references.
package rc

import (
	"os"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"

	"github.com/panplot/panplot/pkg/errors"
)

// Config holds the tunable defaults. Dimensions are plain floats in
// the file: inches for sizing fields, points for fonts and pads.
type Config struct {
	Format FormatConfig `toml:"format"`
	ABC    ABCConfig    `toml:"abc"`
	Figure FigureConfig `toml:"figure"`
	Share  ShareConfig  `toml:"share"`
	Unit   UnitConfig   `toml:"unit"`
}

// FormatConfig sets tick formatter defaults.
type FormatConfig struct {
	ZeroTrim  bool `toml:"zerotrim"`
	Precision int  `toml:"precision"` // -1 for shortest form
}

// ABCConfig sets panel label defaults.
type ABCConfig struct {
	Style    string `toml:"style"`
	Location string `toml:"location"`
}

// FigureConfig sets figure sizing defaults, in inches.
type FigureConfig struct {
	RefWidth  float64 `toml:"refwidth"`
	RefAspect float64 `toml:"refaspect"`
	TightPad  float64 `toml:"tightpad"` // points
	DPI       float64 `toml:"dpi"`
}

// ShareConfig sets axis sharing defaults; levels use the names
// accepted by figure.ParseShareLevel.
type ShareConfig struct {
	X     string `toml:"x"`
	Y     string `toml:"y"`
	SpanX bool   `toml:"spanx"`
	SpanY bool   `toml:"spany"`
}

// UnitConfig sets the references for relative units.
type UnitConfig struct {
	FontSize float64 `toml:"fontsize"` // points, em basis
	DPI      float64 `toml:"dpi"`      // px basis
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: FormatConfig{ZeroTrim: true, Precision: -1},
		ABC:    ABCConfig{Style: "a", Location: "upper left"},
		Figure: FigureConfig{RefWidth: 2.5, RefAspect: 1, TightPad: 5, DPI: 100},
		Share:  ShareConfig{X: "labels", Y: "labels"},
		Unit:   UnitConfig{FontSize: 10, DPI: 100},
	}
}

// Load reads a TOML config file on top of the defaults. A missing file
// is not an error; the defaults are returned unchanged. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %q", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %q", path)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// validate rejects values the downstream packages cannot use.
func (c Config) validate() error {
	if c.Figure.RefWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "figure.refwidth must be positive, got %g", c.Figure.RefWidth)
	}
	if c.Figure.RefAspect <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "figure.refaspect must be positive, got %g", c.Figure.RefAspect)
	}
	if c.Figure.TightPad < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "figure.tightpad must not be negative, got %g", c.Figure.TightPad)
	}
	if c.Figure.DPI <= 0 || c.Unit.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive")
	}
	if c.Unit.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unit.fontsize must be positive, got %g", c.Unit.FontSize)
	}
	if c.Format.Precision < -1 {
		return errors.New(errors.ErrCodeInvalidConfig, "format.precision must be -1 or a digit count, got %d", c.Format.Precision)
	}
	return nil
}

// RefWidth returns the default reference cell width as a length.
func (c Config) RefWidth() vg.Length {
	return vg.Length(c.Figure.RefWidth) * vg.Inch
}

// FontSize returns the em basis as a length.
func (c Config) FontSize() vg.Length {
	return vg.Length(c.Unit.FontSize)
}
