// Package scale provides axis scales for gonum.org/v1/plot.
//
// # Overview
//
// A scale warps axis coordinates before linear layout. Each scale is
// backed by a [Transform]: a closed-form forward/inverse function pair
// such as a power law, an exponential, a piecewise-linear cutoff, or a
// cartographic latitude mapping. The [Scale] type adapts a Transform to
// the plot.Normalizer contract so it can be installed on a plot.Axis,
// and carries the default ticker and tick formatter appropriate for the
// mapping.
//
// # Basic Usage
//
// Look scales up by registered name with [New], or construct them
// directly:
//
//	s, err := scale.New("power", 2)
//	if err != nil {
//	    return err
//	}
//	p := plot.New()
//	s.Apply(&p.Y)
//
// Registered names include the fundamental scales (linear, log, symlog,
// inverse, power, exp, cutoff, mercator, sine) and presets built on them
// (quadratic, cubic, quartic, height, pressure, db, idb, np, inp). Use
// [Names] and [Presets] to enumerate them.
//
// # Domain Handling
//
// Transforms never return surprise infinities for out-of-domain input.
// Scales with a restricted domain clamp (power, exp, inverse, log clamp
// non-positive values to a minimum positive epsilon) or mask (mercator
// and sine latitude map out-of-range degrees to NaN, which the host
// framework skips). [Scale.LimitRange] reports the axis limits a scale
// can display, mirroring the clamping policy.
package scale
