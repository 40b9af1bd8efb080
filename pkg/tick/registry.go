package tick

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/plot"

	"github.com/panplot/panplot/pkg/errors"
)

// formatterRegistry maps names to formatter constructors.
var formatterRegistry = map[string]func() Formatter{
	"auto":    func() Formatter { return NewAutoFormatter() },
	"default": func() Formatter { return NewAutoFormatter() },
	"simple":  func() Formatter { return NewSimpleFormatter() },
	"none":    Null,
	"null":    Null,
	"frac":    func() Formatter { return NewFracFormatter("", 1) },
	"pi":      func() Formatter { return Pi() },
	"e":       func() Formatter { return E() },
	"deg":     func() Formatter { return Deg() },
	"deglon":  func() Formatter { return DegLon() },
	"deglat":  func() Formatter { return DegLat() },
	"lon":     func() Formatter { return Lon() },
	"lat":     func() Formatter { return Lat() },
}

// FormatterNames returns the registered formatter names, sorted.
func FormatterNames() []string {
	names := make([]string, 0, len(formatterRegistry))
	for name := range formatterRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewFormatter builds a formatter from a specification string. A spec
// containing a % verb becomes an fmt.Sprintf formatter ("%.2f" labels
// ticks with two decimals); anything else is a case-insensitive registry
// lookup. Unknown names error with the list of valid options.
func NewFormatter(spec string) (Formatter, error) {
	if strings.Contains(spec, "%") {
		return FormatterFunc(func(v float64) string {
			return fmt.Sprintf(spec, v)
		}), nil
	}
	f, ok := formatterRegistry[strings.ToLower(spec)]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownFormatter,
			"unknown formatter %q, options are: %s", spec, strings.Join(FormatterNames(), ", "))
	}
	return f(), nil
}

// TickerFactory builds a ticker from positional numeric arguments.
type TickerFactory func(args ...float64) (plot.Ticker, error)

// tickerRegistry maps names to ticker factories.
var tickerRegistry = map[string]TickerFactory{
	"auto":     makeAutoTicker,
	"none":     makeNullTicker,
	"null":     makeNullTicker,
	"fixed":    makeFixedTicker,
	"multiple": makeMultipleTicker,
	"index":    makeIndexTicker,
	"linear":   makeLinearTicker,
	"log":      makeLogTicker,
	"symlog":   makeSymLogTicker,
}

// TickerNames returns the registered ticker names, sorted.
func TickerNames() []string {
	names := make([]string, 0, len(tickerRegistry))
	for name := range tickerRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewTicker builds a ticker by registered name (case-insensitive) with
// positional arguments. Unknown names error with the list of valid
// options.
func NewTicker(name string, args ...float64) (plot.Ticker, error) {
	f, ok := tickerRegistry[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownTicker,
			"unknown ticker %q, options are: %s", name, strings.Join(TickerNames(), ", "))
	}
	return f(args...)
}

func makeAutoTicker(args ...float64) (plot.Ticker, error) {
	if len(args) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "ticker %q takes no arguments", "auto")
	}
	return DefaultTicker(), nil
}

func makeNullTicker(args ...float64) (plot.Ticker, error) {
	if len(args) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "ticker %q takes no arguments", "null")
	}
	return NullTicker(), nil
}

func makeFixedTicker(args ...float64) (plot.Ticker, error) {
	if len(args) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "ticker %q needs at least one tick location", "fixed")
	}
	return FixedTicker(args...), nil
}

func makeMultipleTicker(args ...float64) (plot.Ticker, error) {
	if len(args) != 1 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "ticker %q takes exactly one argument, the step", "multiple")
	}
	if args[0] <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "multiple ticker step must be positive, got %g", args[0])
	}
	return MultipleTicker(args[0]), nil
}

func makeIndexTicker(args ...float64) (plot.Ticker, error) {
	if len(args) > 2 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "ticker %q takes at most a step and an offset", "index")
	}
	step, offset := 1.0, 0.0
	if len(args) > 0 {
		step = args[0]
	}
	if len(args) > 1 {
		offset = args[1]
	}
	if step <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "index ticker step must be positive, got %g", step)
	}
	return IndexTicker(step, offset), nil
}

func makeLinearTicker(args ...float64) (plot.Ticker, error) {
	if len(args) != 1 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "ticker %q takes exactly one argument, the tick count", "linear")
	}
	n := int(args[0])
	if n < 2 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "linear ticker needs at least 2 ticks, got %d", n)
	}
	return LinearTicker(n), nil
}

func makeLogTicker(args ...float64) (plot.Ticker, error) {
	base := 10.0
	var subs []float64
	if len(args) > 0 {
		base = args[0]
		subs = args[1:]
	}
	if base <= 1 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "log ticker base must be greater than 1, got %g", base)
	}
	return LogTicker(base, subs), nil
}

func makeSymLogTicker(args ...float64) (plot.Ticker, error) {
	if len(args) > 2 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "ticker %q takes at most a base and a linear threshold", "symlog")
	}
	base, linthresh := 10.0, 1.0
	if len(args) > 0 {
		base = args[0]
	}
	if len(args) > 1 {
		linthresh = args[1]
	}
	if base <= 1 || linthresh <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidTicker, "symlog ticker needs base > 1 and a positive linear threshold")
	}
	return SymLogTicker(base, linthresh), nil
}
