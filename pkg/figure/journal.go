package figure

import (
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/panplot/panplot/pkg/errors"
)

// journalSize is a publisher figure spec. A zero height means the
// journal constrains width only.
type journalSize struct {
	width  vg.Length
	height vg.Length
}

// journals maps preset names to publisher figure sizes: single and
// double column widths for Nature, AGU, AAAS and PNAS, and the AMS
// size ladder.
var journals = map[string]journalSize{
	"nat1":  {width: 89 * vg.Millimeter},
	"nat2":  {width: 183 * vg.Millimeter},
	"agu1":  {width: 95 * vg.Millimeter, height: 115 * vg.Millimeter},
	"agu2":  {width: 190 * vg.Millimeter, height: 115 * vg.Millimeter},
	"agu3":  {width: 95 * vg.Millimeter, height: 230 * vg.Millimeter},
	"agu4":  {width: 190 * vg.Millimeter, height: 230 * vg.Millimeter},
	"aaas1": {width: 5.5 * vg.Centimeter},
	"aaas2": {width: 12 * vg.Centimeter},
	"pnas1": {width: 8.7 * vg.Centimeter},
	"pnas2": {width: 11.4 * vg.Centimeter},
	"pnas3": {width: 17.8 * vg.Centimeter},
	"ams1":  {width: 3.2 * vg.Inch},
	"ams2":  {width: 4.5 * vg.Inch},
	"ams3":  {width: 5.5 * vg.Inch},
	"ams4":  {width: 6.5 * vg.Inch},
}

// Journal looks up a journal preset by name (case-insensitive). The
// returned height is zero when the preset constrains only the width.
// Unknown names error with the list of valid options.
func Journal(name string) (width, height vg.Length, err error) {
	j, ok := journals[strings.ToLower(name)]
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeUnknownJournal,
			"unknown journal %q, options are: %s", name, strings.Join(Journals(), ", "))
	}
	return j.width, j.height, nil
}

// Journals returns the journal preset names, sorted.
func Journals() []string {
	names := make([]string, 0, len(journals))
	for name := range journals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
