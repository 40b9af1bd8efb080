package scale

import (
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/panplot/panplot/pkg/errors"
	"github.com/panplot/panplot/pkg/tick"
)

// Factory builds a Scale from positional numeric arguments, mirroring
// how scales are selected by name plus parameters.
type Factory func(args ...float64) (*Scale, error)

// preset expands a shorthand name into a base scale plus arguments.
type preset struct {
	target string
	args   []float64
}

var (
	mu       sync.RWMutex
	registry = map[string]Factory{
		"linear":   makeLinear,
		"log":      makeLog,
		"symlog":   makeSymLog,
		"inverse":  makeInverse,
		"power":    makePower,
		"exp":      makeExp,
		"cutoff":   makeCutoff,
		"mercator": makeMercator,
		"sine":     makeSine,
	}

	// Scale presets and their positional args. The exp presets encode
	// the (base, rate, coeff, inverted) parameter order of makeExp.
	presets = map[string]preset{
		"quadratic": {"power", []float64{2}},
		"cubic":     {"power", []float64{3}},
		"quartic":   {"power", []float64{4}},
		"height":    {"exp", []float64{math.E, -1.0 / 7, 1013.25, 1}},
		"pressure":  {"exp", []float64{math.E, -1.0 / 7, 1013.25, 0}},
		"db":        {"exp", []float64{10, 1, 0.1, 1}},
		"idb":       {"exp", []float64{10, 1, 0.1, 0}},
		"np":        {"exp", []float64{math.E, 1, 1, 1}},
		"inp":       {"exp", []float64{math.E, 1, 1, 0}},
	}
)

// Register adds a scale factory under the given name. Registering an
// empty name or a name that is already taken (by a scale or a preset)
// is an error.
func Register(name string, f Factory) error {
	name = strings.ToLower(name)
	if name == "" {
		return errors.New(errors.ErrCodeInvalidScale, "scale name must not be empty")
	}
	if f == nil {
		return errors.New(errors.ErrCodeInvalidScale, "scale factory must not be nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[name]; ok {
		return errors.New(errors.ErrCodeInvalidScale, "scale %q is already registered", name)
	}
	if _, ok := presets[name]; ok {
		return errors.New(errors.ErrCodeInvalidScale, "scale %q is already registered as a preset", name)
	}
	registry[name] = f
	return nil
}

// Names returns the registered scale names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Presets returns the preset scale names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New looks up a scale by name (case-insensitive) and builds it with the
// given positional arguments. Preset names expand to their base scale
// and fixed arguments; passing arguments to a preset is an error. An
// unknown name errors with the list of valid options.
func New(name string, args ...float64) (*Scale, error) {
	name = strings.ToLower(name)

	if p, ok := presets[name]; ok {
		if len(args) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScale, "scale %q is a preset and does not accept arguments", name)
		}
		name, args = p.target, p.args
	}

	mu.RLock()
	f, ok := registry[name]
	mu.RUnlock()
	if !ok {
		options := append(Names(), Presets()...)
		slices.Sort(options)
		return nil, errors.New(errors.ErrCodeUnknownScale,
			"unknown scale %q, options are: %s", name, strings.Join(options, ", "))
	}
	return f(args...)
}

// NewFuncScale builds a scale from a user-supplied forward/inverse pair.
// Function scales cannot be expressed as numeric registry arguments, so
// they have a dedicated constructor instead of a registry entry.
func NewFuncScale(forward, inverse func(float64) float64) (*Scale, error) {
	t, err := NewFunc(forward, inverse)
	if err != nil {
		return nil, err
	}
	return FromTransform(t), nil
}

// argAt returns args[i], or def when fewer arguments were given.
func argAt(args []float64, i int, def float64) float64 {
	if i < len(args) {
		return args[i]
	}
	return def
}

// atMost errors when more than n positional arguments were given.
func atMost(name string, args []float64, n int) error {
	if len(args) > n {
		return errors.New(errors.ErrCodeInvalidScale, "scale %q takes at most %d arguments, got %d", name, n, len(args))
	}
	return nil
}

func makeLinear(args ...float64) (*Scale, error) {
	if err := atMost("linear", args, 0); err != nil {
		return nil, err
	}
	return &Scale{
		name:      "linear",
		transform: Linear{},
		ticker:    tick.DefaultTicker(),
		formatter: tick.NewAutoFormatter(),
	}, nil
}

func makeLog(args ...float64) (*Scale, error) {
	if err := atMost("log", args, 1); err != nil {
		return nil, err
	}
	t, err := NewLog(argAt(args, 0, 10))
	if err != nil {
		return nil, err
	}
	return &Scale{
		name:      "log",
		transform: t,
		limit:     limitPositive(t.MinPos),
		ticker:    tick.LogTicker(t.Base, nil),
		formatter: tick.NewAutoFormatter(),
	}, nil
}

func makeSymLog(args ...float64) (*Scale, error) {
	if err := atMost("symlog", args, 3); err != nil {
		return nil, err
	}
	t, err := NewSymLog(argAt(args, 0, 10), argAt(args, 1, 2), argAt(args, 2, 1))
	if err != nil {
		return nil, err
	}
	return &Scale{
		name:      "symlog",
		transform: t,
		ticker:    tick.SymLogTicker(t.Base, t.LinThresh),
		formatter: tick.NewAutoFormatter(),
	}, nil
}

func makeInverse(args ...float64) (*Scale, error) {
	if err := atMost("inverse", args, 0); err != nil {
		return nil, err
	}
	t := NewInverse()
	return &Scale{
		name:      "inverse",
		transform: t,
		limit:     limitPositive(t.MinPos),
		ticker:    tick.LogTicker(10, []float64{1, 2, 5}),
		formatter: tick.NewAutoFormatter(),
	}, nil
}

func makePower(args ...float64) (*Scale, error) {
	if err := atMost("power", args, 2); err != nil {
		return nil, err
	}
	t, err := NewPower(argAt(args, 0, 1))
	if err != nil {
		return nil, err
	}
	t.Inverted = argAt(args, 1, 0) != 0
	return &Scale{
		name:      "power",
		transform: t,
		limit:     limitPositive(t.MinPos),
		ticker:    tick.DefaultTicker(),
		formatter: tick.NewAutoFormatter(),
	}, nil
}

func makeExp(args ...float64) (*Scale, error) {
	if err := atMost("exp", args, 4); err != nil {
		return nil, err
	}
	t, err := NewExp(argAt(args, 0, math.E), argAt(args, 1, 1), argAt(args, 2, 1))
	if err != nil {
		return nil, err
	}
	t.Inverted = argAt(args, 3, 0) != 0
	return &Scale{
		name:      "exp",
		transform: t,
		limit:     limitPositive(t.MinPos),
		ticker:    tick.DefaultTicker(),
		formatter: tick.NewAutoFormatter(),
	}, nil
}

func makeCutoff(args ...float64) (*Scale, error) {
	if len(args) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "scale %q needs a scale factor and a lower bound", "cutoff")
	}
	if err := atMost("cutoff", args, 3); err != nil {
		return nil, err
	}
	t, err := NewCutoffRange(args[0], args[1], argAt(args, 2, math.NaN()))
	if err != nil {
		return nil, err
	}
	return &Scale{
		name:      "cutoff",
		transform: t,
		ticker:    tick.DefaultTicker(),
		formatter: tick.NewAutoFormatter(),
	}, nil
}

func makeMercator(args ...float64) (*Scale, error) {
	if err := atMost("mercator", args, 1); err != nil {
		return nil, err
	}
	t, err := NewMercatorLatitude(argAt(args, 0, 85))
	if err != nil {
		return nil, err
	}
	return &Scale{
		name:      "mercator",
		transform: t,
		limit:     limitInterval(-t.Thresh, t.Thresh),
		ticker:    tick.DefaultTicker(),
		formatter: tick.Deg(),
	}, nil
}

func makeSine(args ...float64) (*Scale, error) {
	if err := atMost("sine", args, 0); err != nil {
		return nil, err
	}
	return &Scale{
		name:      "sine",
		transform: NewSineLatitude(),
		limit:     limitInterval(-90, 90),
		ticker:    tick.DefaultTicker(),
		formatter: tick.Deg(),
	}, nil
}
