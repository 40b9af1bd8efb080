package scale

import (
	"math"

	"github.com/panplot/panplot/pkg/errors"
)

// degToRad and radToDeg convert between degrees and radians.
const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// MercatorLatitude scales an axis as latitude under the Mercator
// projection:
//
//	y = ln(tan(πx/180) + sec(πx/180))
//
// Input is in degrees. Latitudes beyond ±Thresh are masked to NaN since
// the projection diverges at the poles.
type MercatorLatitude struct {
	Thresh float64
}

// NewMercatorLatitude creates a Mercator latitude transform limited to
// ±thresh degrees. The threshold must lie strictly between 0 and 90.
func NewMercatorLatitude(thresh float64) (*MercatorLatitude, error) {
	if thresh <= 0 || thresh >= 90 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "mercator threshold must be between 0 and 90 exclusive, got %g", thresh)
	}
	return &MercatorLatitude{Thresh: thresh}, nil
}

// Name returns "mercator".
func (*MercatorLatitude) Name() string { return "mercator" }

// Forward maps latitude degrees to Mercator y. Values outside ±Thresh
// return NaN.
func (t *MercatorLatitude) Forward(v float64) float64 {
	if !(v >= -t.Thresh && v <= t.Thresh) {
		return math.NaN()
	}
	r := v * degToRad
	return math.Log(math.Abs(math.Tan(r) + 1/math.Cos(r)))
}

// Inverse maps Mercator y back to latitude degrees via the gudermannian
// function x = atan(sinh(y)).
func (t *MercatorLatitude) Inverse(v float64) float64 {
	return math.Atan(math.Sinh(v)) * radToDeg
}

// SineLatitude scales an axis to be linear in the sine of latitude
// degrees: y = sin(πx/180). Values outside ±90 are masked to NaN.
type SineLatitude struct{}

// NewSineLatitude creates a sine latitude transform.
func NewSineLatitude() *SineLatitude { return &SineLatitude{} }

// Name returns "sine".
func (*SineLatitude) Name() string { return "sine" }

// Forward maps latitude degrees to sin(latitude). Values outside ±90
// (and NaN input) return NaN.
func (*SineLatitude) Forward(v float64) float64 {
	if !(v >= -90 && v <= 90) {
		return math.NaN()
	}
	return math.Sin(v * degToRad)
}

// Inverse maps a sine back to degrees, clamping to [-1, 1] so layout
// round-off cannot produce NaN.
func (*SineLatitude) Inverse(v float64) float64 {
	if v < -1 {
		v = -1
	} else if v > 1 {
		v = 1
	}
	return math.Asin(v) * radToDeg
}
