// Package unit parses physical length strings such as "2.5cm", "12pt"
// or "1.5em" into vg.Length values for figure sizing. Bare numbers are
// interpreted as inches, the convention used throughout the sizing
// arguments in this module.
package unit

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/panplot/panplot/pkg/errors"
)

// Default references for the relative units.
const (
	DefaultFontSize vg.Length = 10  // em basis, points
	DefaultDPI      float64   = 100 // px basis, dots per inch
)

// Parser converts length strings to vg.Length. The zero value is not
// usable; construct one with NewParser and adjust the references for
// the relative units as needed.
type Parser struct {
	FontSize vg.Length // reference for em and en
	DPI      float64   // reference for px
}

// NewParser creates a Parser with a 10 point font and 100 DPI.
func NewParser() *Parser {
	return &Parser{FontSize: DefaultFontSize, DPI: DefaultDPI}
}

// suffixes is ordered longest-first so "mm" wins over "m".
var suffixes = []string{"in", "ft", "cm", "mm", "pt", "pc", "px", "em", "en", "m"}

// Length parses a length string. Recognized suffixes are in, ft, m,
// cm, mm, pt, pc, px, em and en; a bare number means inches. Negative,
// non-finite and malformed inputs error.
func (p *Parser) Length(s string) (vg.Length, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "empty length")
	}

	num := trimmed
	unit := "in"
	lower := strings.ToLower(trimmed)
	for _, suf := range suffixes {
		if strings.HasSuffix(lower, suf) {
			num = strings.TrimSpace(trimmed[:len(trimmed)-len(suf)])
			unit = suf
			break
		}
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidUnit, err, "malformed length %q", s)
	}
	if v < 0 {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "length %q must not be negative", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "length %q must be finite", s)
	}

	scale, err := p.scale(unit)
	if err != nil {
		return 0, err
	}
	return vg.Length(v) * scale, nil
}

// scale returns the point size of one unit.
func (p *Parser) scale(unit string) (vg.Length, error) {
	switch unit {
	case "in":
		return vg.Inch, nil
	case "ft":
		return 12 * vg.Inch, nil
	case "m":
		return 100 * vg.Centimeter, nil
	case "cm":
		return vg.Centimeter, nil
	case "mm":
		return vg.Millimeter, nil
	case "pt":
		return 1, nil
	case "pc":
		return vg.Inch / 6, nil
	case "px":
		if p.DPI <= 0 {
			return 0, errors.New(errors.ErrCodeInvalidUnit, "px needs a positive DPI, parser has %g", p.DPI)
		}
		return vg.Inch / vg.Length(p.DPI), nil
	case "em":
		if p.FontSize <= 0 {
			return 0, errors.New(errors.ErrCodeInvalidUnit, "em needs a positive font size, parser has %v", p.FontSize)
		}
		return p.FontSize, nil
	case "en":
		if p.FontSize <= 0 {
			return 0, errors.New(errors.ErrCodeInvalidUnit, "en needs a positive font size, parser has %v", p.FontSize)
		}
		return p.FontSize / 2, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q", unit)
}

// Length parses a length string with the default font size and DPI.
func Length(s string) (vg.Length, error) {
	return NewParser().Length(s)
}

// MustLength is Length for static values known to be valid; it panics
// on error. Intended for package-level defaults.
func MustLength(s string) vg.Length {
	l, err := Length(s)
	if err != nil {
		panic(err)
	}
	return l
}
