package scale

// Inverse scales an axis to be linear in 1/v. Unlike log-style scales it
// reverses the order of the values it displays, so an axis from 1 to 10
// in data space runs from 1 down to 0.1 in scaled space. Input at or
// below MinPos is clamped to MinPos.
//
// The reciprocal is its own inverse, so Forward and Inverse coincide.
type Inverse struct {
	MinPos float64
}

// NewInverse creates a reciprocal transform.
func NewInverse() *Inverse { return &Inverse{MinPos: DefaultMinPos} }

// Name returns "inverse".
func (*Inverse) Name() string { return "inverse" }

// Forward returns 1/v with clamping of non-positive input.
func (t *Inverse) Forward(v float64) float64 {
	return 1 / clampMin(v, t.MinPos)
}

// Inverse returns 1/v with clamping of non-positive input.
func (t *Inverse) Inverse(v float64) float64 {
	return t.Forward(v)
}
