package rules

import (
	"fmt"
	"math"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// ToleranceMode represents how numeric tolerance is applied.
type ToleranceMode string

const (
	// ToleranceModeRelative uses relative tolerance (fraction of the left value).
	ToleranceModeRelative ToleranceMode = "relative"
	// ToleranceModeAbsolute uses absolute tolerance.
	ToleranceModeAbsolute ToleranceMode = "absolute"
	// ToleranceModeULP uses ULP (Units in Last Place) tolerance for IEEE 754 precision.
	ToleranceModeULP ToleranceMode = "ulp"
)

// DefaultTolerance is used when a numeric rule sets no tolerance.
const DefaultTolerance = 1e-9

// ParseToleranceMode validates a mode name. The empty string selects
// ToleranceModeRelative.
func ParseToleranceMode(s string) (ToleranceMode, error) {
	switch ToleranceMode(s) {
	case "", ToleranceModeRelative:
		return ToleranceModeRelative, nil
	case ToleranceModeAbsolute, ToleranceModeULP:
		return ToleranceMode(s), nil
	default:
		return "", fmt.Errorf("invalid tolerance mode %q (must be \"relative\", \"absolute\", or \"ulp\")", s)
	}
}

// Numeric compares two numbers within a tolerance. Both values must be
// numbers; anything else is a mismatch.
//
// For ToleranceModeULP, Tolerance is truncated to an integer ULP distance.
type Numeric struct {
	LeftPath     string
	RightPath    string
	Tolerance    float64
	Mode         ToleranceMode
	NaNEqualsNaN bool
}

func (r Numeric) Evaluate(left, right doccmp.Value) bool {
	a, aok := doccmp.Lookup(left, r.LeftPath).AsNumber()
	b, bok := doccmp.Lookup(right, r.RightPath).AsNumber()
	if !aok || !bok {
		return false
	}
	return r.within(a, b)
}

func (r Numeric) within(expected, actual float64) bool {
	if math.IsNaN(expected) && math.IsNaN(actual) {
		return r.NaNEqualsNaN
	}
	if math.IsInf(expected, 1) && math.IsInf(actual, 1) {
		return true
	}
	if math.IsInf(expected, -1) && math.IsInf(actual, -1) {
		return true
	}
	if math.IsNaN(expected) || math.IsNaN(actual) ||
		math.IsInf(expected, 0) || math.IsInf(actual, 0) {
		return false
	}

	switch r.Mode {
	case ToleranceModeAbsolute:
		return math.Abs(expected-actual) <= r.Tolerance
	case ToleranceModeULP:
		return ULPDiff(expected, actual) <= int64(r.Tolerance)
	default:
		// Relative tolerance: explicit, empty string, or unknown mode.
		if expected == 0 {
			return math.Abs(actual) <= r.Tolerance
		}
		return math.Abs((expected-actual)/expected) <= r.Tolerance
	}
}

// ULPDiff returns the distance between a and b in units in the last place.
// Values of opposite sign are measured through zero. Distances beyond the
// int64 range saturate at math.MaxInt64.
func ULPDiff(a, b float64) int64 {
	ai, bi := orderedBits(a), orderedBits(b)
	var diff uint64
	if ai > bi {
		diff = ai - bi
	} else {
		diff = bi - ai
	}
	if diff > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(diff)
}

// orderedBits maps f onto a uint64 scale where adjacent floats differ by one
// and +0 and -0 coincide.
func orderedBits(f float64) uint64 {
	const signBit = uint64(1) << 63
	u := math.Float64bits(f)
	if u&signBit != 0 {
		return signBit - (u &^ signBit)
	}
	return signBit + u
}
