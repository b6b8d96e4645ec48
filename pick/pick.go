// Package pick provides the random-selection and clamping helpers plugin
// commands lean on.
package pick

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/charmbracelet/x/exp/ordered"
)

// ErrInvalidBound reports a clamp argument that is not a number, or a bound
// pair in the wrong order.
var ErrInvalidBound = errors.New("invalid clamp bound")

// From returns a uniformly random element of items. The second return is
// false when items is empty.
func From[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rand.IntN(len(items))], true
}

// Range returns a uniformly random integer in [lo, hi]. The second return
// is false when the range is empty.
func Range(lo, hi int) (int, bool) {
	if hi < lo {
		return 0, false
	}
	return lo + rand.IntN(hi-lo+1), true
}

// Clip clamps x to [lo, hi].
func Clip[T cmp.Ordered](x, lo, hi T) T {
	return ordered.Clamp(x, lo, hi)
}

// ClipParsed clamps a numeric plugin argument between string bounds, the
// form command handlers receive them in.
func ClipParsed(x, lo, hi string) (float64, error) {
	xv, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBound, x)
	}
	lov, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBound, lo)
	}
	hiv, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBound, hi)
	}
	if lov > hiv {
		return 0, fmt.Errorf("%w: %v > %v", ErrInvalidBound, lov, hiv)
	}
	return Clip(xv, lov, hiv), nil
}
