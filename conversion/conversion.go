// Package conversion holds the dB/linear unit conversions used throughout
// the link-budget computations.
package conversion

import (
	"fmt"
	"math"
)

// DomainError reports a mathematically undefined conversion input, such as
// taking the logarithm of a non-positive power.
type DomainError struct {
	Op    string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("conversion: %s undefined for %v", e.Op, e.Value)
}

// DbToLinear converts a dB ratio to its linear equivalent.
func DbToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearToDb converts a linear ratio to dB. The input must be strictly
// positive; zero or negative power has no dB representation and is never
// clamped here, since a silent -Inf would corrupt downstream SINR math.
func LinearToDb(linear float64) (float64, error) {
	if linear <= 0 {
		return 0, &DomainError{Op: "LinearToDb", Value: linear}
	}
	return 10 * math.Log10(linear), nil
}

// DbmToW converts a power in dBm to Watts.
func DbmToW(dbm float64) float64 {
	return DbToLinear(dbm) / 1000
}

// WToDbm converts a power in Watts to dBm. The input must be strictly
// positive.
func WToDbm(w float64) (float64, error) {
	if w <= 0 {
		return 0, &DomainError{Op: "WToDbm", Value: w}
	}
	return 10 * math.Log10(w*1000), nil
}
