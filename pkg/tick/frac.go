package tick

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FracFormatter formats values as fractions or multiples of a constant,
// such as π or e. The value divided by Number is approximated by the
// best rational with denominator at most MaxDenom, which absorbs the
// floating-point error in inputs like 2*math.Pi/3.
type FracFormatter struct {
	Symbol   string  // display symbol for the constant, e.g. "π"
	Number   float64 // the constant itself, e.g. math.Pi
	MaxDenom int64   // denominator limit for the rational approximation
}

// NewFracFormatter creates a FracFormatter for multiples of number
// displayed with the given symbol. An empty symbol formats plain
// fractions; a number of 1 formats values themselves as fractions.
func NewFracFormatter(symbol string, number float64) *FracFormatter {
	return &FracFormatter{Symbol: symbol, Number: number, MaxDenom: 1000000}
}

// Pi formats values as fractions of π.
func Pi() *FracFormatter { return NewFracFormatter("π", math.Pi) }

// E formats values as fractions of Euler's number.
func E() *FracFormatter { return NewFracFormatter("e", math.E) }

// Format renders v as numerator·Symbol/denominator, with unit
// numerators and denominators elided ("π", "-π/2", "3π/4"). NaN (a
// masked value) suppresses the label; infinities and values too large
// for a bounded-denominator fraction fall back to plain rendering.
func (f *FracFormatter) Format(v float64) string {
	if v == 0 {
		return "0"
	}
	x := v / f.Number
	if math.IsNaN(x) {
		return ""
	}
	if math.IsInf(x, 0) || math.Abs(x) >= float64(f.MaxDenom) {
		s := strconv.FormatFloat(v, 'g', -1, 64)
		return strings.ReplaceAll(s, "-", minusSign)
	}
	num, den := approxRational(x, f.MaxDenom)

	var s string
	switch {
	case den == 1 && num == 1 && f.Symbol != "":
		s = f.Symbol
	case den == 1 && num == -1 && f.Symbol != "":
		s = "-" + f.Symbol
	case den == 1:
		s = fmt.Sprintf("%d%s", num, f.Symbol)
	case num == 1 && f.Symbol != "":
		s = fmt.Sprintf("%s/%d", f.Symbol, den)
	case num == -1 && f.Symbol != "":
		s = fmt.Sprintf("-%s/%d", f.Symbol, den)
	default:
		s = fmt.Sprintf("%d%s/%d", num, f.Symbol, den)
	}
	return strings.ReplaceAll(s, "-", minusSign)
}

// approxRational returns the best rational approximation num/den of x
// with den <= maxDen, computed from the continued fraction expansion.
// x must be finite and |x| must stay below maxDen so the convergents
// fit in int64; anything else returns 0/1.
func approxRational(x float64, maxDen int64) (num, den int64) {
	if maxDen < 1 {
		maxDen = 1
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= float64(maxDen) {
		return 0, 1
	}
	sign := int64(1)
	if x < 0 {
		sign, x = -1, -x
	}

	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	r := x
	for {
		// A term this large would push the denominator past the
		// bound anyway.
		if r > float64(maxDen) {
			break
		}
		a := int64(math.Floor(r))
		p2 := a*p1 + p0
		q2 := a*q1 + q0
		if q2 > maxDen {
			break
		}
		p0, q0, p1, q1 = p1, q1, p2, q2

		frac := r - math.Floor(r)
		if frac < 1e-12 {
			break
		}
		r = 1 / frac
	}
	return sign * p1, q1
}
