// Package grade maps numeric job-fit scores onto letter grades.
package grade

import (
	"errors"
	"fmt"
)

type Grade string

const (
	A Grade = "A"
	B Grade = "B"
	C Grade = "C"
	D Grade = "D"
	F Grade = "F"
)

var ErrUnknownGrade = errors.New("unknown grade")

// breakpoints are fixed and non-overlapping; order matters.
var breakpoints = []struct {
	Grade Grade
	Min   int
}{
	{A, 85},
	{B, 70},
	{C, 55},
	{D, 40},
	{F, 0},
}

// Calculate maps any score (negative or >100 after bonuses) to exactly one grade.
func Calculate(score int) Grade {
	for _, bp := range breakpoints {
		if score >= bp.Min {
			return bp.Grade
		}
	}
	return F
}

// Threshold returns the minimum score for g.
func Threshold(g Grade) (int, error) {
	for _, bp := range breakpoints {
		if bp.Grade == g {
			return bp.Min, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGrade, g)
}

// Meets reports whether score reaches the threshold for g. Meeting A
// implies meeting every grade below it.
func Meets(score int, g Grade) (bool, error) {
	min, err := Threshold(g)
	if err != nil {
		return false, err
	}
	return score >= min, nil
}
