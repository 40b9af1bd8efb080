package tick

import (
	"strconv"
	"strings"
)

// minusSign is the unicode minus, typographically wider than a hyphen.
const minusSign = "−"

// degreeSign suffixes cardinal coordinate labels.
const degreeSign = "°"

// SimpleFormatter formats values at a fixed maximum precision with zero
// trimming, optional prefix/suffix and optional cardinal direction
// suffixes. It is suited to labels not tied to an axis, such as contour
// or colorbar labels, and to geographic coordinates.
type SimpleFormatter struct {
	Precision int    // digits after the decimal point
	Prefix    string // attached before the number
	Suffix    string // attached after the number
	// NegPos holds two runes used as suffixes for negative and positive
	// values in place of a sign, e.g. "SN" for latitudes or "WE" for
	// longitudes. Zero gets neither; a value shorter than two runes is
	// ignored.
	NegPos string
}

// NewSimpleFormatter creates a SimpleFormatter with six digits of
// precision and no affixes.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{Precision: 6}
}

// Format renders v per the formatter settings, using a unicode minus
// for negative values.
func (f *SimpleFormatter) Format(v float64) string {
	cardinal := ""
	if runes := []rune(f.NegPos); len(runes) >= 2 && v != 0 {
		if v > 0 {
			cardinal = string(runes[1])
		} else {
			v = -v
			cardinal = string(runes[0])
		}
	}

	s := trimZeros(strconv.FormatFloat(v, 'f', f.Precision, 64))
	if s == "-0" {
		s = "0"
	}
	s = strings.ReplaceAll(s, "-", minusSign)
	return f.Prefix + s + f.Suffix + cardinal
}

// Deg formats values with a trailing degree sign.
func Deg() *SimpleFormatter {
	f := NewSimpleFormatter()
	f.Suffix = degreeSign
	return f
}

// DegLon formats longitudes with a degree sign and a W/E cardinal
// suffix in place of the sign.
func DegLon() *SimpleFormatter {
	f := Deg()
	f.NegPos = "WE"
	return f
}

// DegLat formats latitudes with a degree sign and an S/N cardinal
// suffix in place of the sign.
func DegLat() *SimpleFormatter {
	f := Deg()
	f.NegPos = "SN"
	return f
}

// Lon formats longitudes with a W/E cardinal suffix and no degree sign.
func Lon() *SimpleFormatter {
	f := NewSimpleFormatter()
	f.NegPos = "WE"
	return f
}

// Lat formats latitudes with an S/N cardinal suffix and no degree sign.
func Lat() *SimpleFormatter {
	f := NewSimpleFormatter()
	f.NegPos = "SN"
	return f
}
