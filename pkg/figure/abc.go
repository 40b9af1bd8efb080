package figure

import (
	"strings"

	"github.com/panplot/panplot/pkg/errors"
)

// ABC produces the n-th panel label (1-based) rendered through a style
// template: the first 'a' in the template is replaced with the
// lowercase label, the first 'A' with the uppercase one. Labels run
// "a" through "z" and continue "aa", "ab" and so on.
//
//	ABC(2, "a.")   -> "b."
//	ABC(2, "(a)")  -> "(b)"
//	ABC(28, "A")   -> "AB"
//
// An empty style means "a". A style without an 'a' or 'A' is an error.
func ABC(n int, style string) (string, error) {
	if n < 1 {
		return "", errors.New(errors.ErrCodeInvalidInput, "panel number must be at least 1, got %d", n)
	}
	if style == "" {
		style = "a"
	}

	label := bijectiveBase26(n)
	if i := strings.IndexByte(style, 'a'); i >= 0 {
		return style[:i] + label + style[i+1:], nil
	}
	if i := strings.IndexByte(style, 'A'); i >= 0 {
		return style[:i] + strings.ToUpper(label) + style[i+1:], nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "label style %q must contain 'a' or 'A'", style)
}

// bijectiveBase26 renders 1 as "a", 26 as "z", 27 as "aa" and so on.
func bijectiveBase26(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// abcAnchors maps position preset names to normalized (x, y) anchors
// within a cell, with (0, 0) at the lower left.
var abcAnchors = map[string][2]float64{
	"upper left":   {0, 1},
	"upper center": {0.5, 1},
	"upper right":  {1, 1},
	"lower left":   {0, 0},
	"lower center": {0.5, 0},
	"lower right":  {1, 0},
	"ul":           {0, 1},
	"uc":           {0.5, 1},
	"ur":           {1, 1},
	"ll":           {0, 0},
	"lc":           {0.5, 0},
	"lr":           {1, 0},
}

// ABCAnchor resolves a label position preset to a normalized (x, y)
// anchor within the cell.
func ABCAnchor(name string) (x, y float64, err error) {
	a, ok := abcAnchors[strings.ToLower(name)]
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "unknown label position %q", name)
	}
	return a[0], a[1], nil
}
