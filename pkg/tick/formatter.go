package tick

import (
	"math"
	"strconv"
	"strings"
)

// Formatter maps a tick value to its display text. An empty string
// suppresses the label, turning the tick into a minor tick.
type Formatter interface {
	Format(v float64) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(v float64) string

// Format calls f.
func (f FormatterFunc) Format(v float64) string { return f(v) }

// Null returns a formatter that suppresses every label.
func Null() Formatter {
	return FormatterFunc(func(float64) string { return "" })
}

// AutoFormatter is the default tick label formatter. It differs from
// plain %g formatting in three ways:
//
//  1. Trailing zeros are trimmed when ZeroTrim is set (0.500 -> "0.5").
//  2. Labels outside [RangeMin, RangeMax] are suppressed, with a
//     relative epsilon of |v|/1000 so boundary ticks survive round-off.
//  3. A prefix and suffix can be attached to every label; they are
//     placed after any leading minus sign ("-$1" rather than "$-1").
//
// A negative zero always formats as "0".
type AutoFormatter struct {
	ZeroTrim  bool
	Precision int // digits after the decimal point, -1 for shortest
	RangeMin  float64
	RangeMax  float64
	Prefix    string
	Suffix    string
}

// NewAutoFormatter creates an AutoFormatter with zero trimming on,
// shortest-form precision and an unbounded label range.
func NewAutoFormatter() *AutoFormatter {
	return &AutoFormatter{
		ZeroTrim:  true,
		Precision: -1,
		RangeMin:  math.Inf(-1),
		RangeMax:  math.Inf(1),
	}
}

// Format renders v per the formatter settings.
func (f *AutoFormatter) Format(v float64) string {
	eps := math.Abs(v) / 1000
	if v+eps < f.RangeMin || v-eps > f.RangeMax {
		return ""
	}

	s := strconv.FormatFloat(v, 'f', f.Precision, 64)
	if f.ZeroTrim {
		s = trimZeros(s)
	}
	if s == "-0" {
		s = "0"
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + f.Prefix + s + f.Suffix
}

// trimZeros removes trailing fractional zeros, and the decimal point
// itself when nothing remains after it.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
