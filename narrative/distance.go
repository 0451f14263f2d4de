// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: the DistanceFormatter collaborator and its metric implementation.

package narrative

import (
	"math"

	"github.com/dustin/go-humanize"
)

// DistanceFormatter turns a raw distance in meters into an arrival phrase.
type DistanceFormatter interface {
	FormatDistance(meters float64) string
}

// FormatterFunc adapts a function to DistanceFormatter.
type FormatterFunc func(meters float64) string

// FormatDistance calls f.
func (f FormatterFunc) FormatDistance(meters float64) string { return f(meters) }

// MetricFormatter speaks distances in meters and kilometers:
//
//	< 10 m       "Continue for less than 10 meters."
//	< 1 km       "Continue for 120 meters."      (nearest 10 m)
//	otherwise    "Continue for 1.8 kilometers."  (at most one decimal)
type MetricFormatter struct{}

// FormatDistance implements DistanceFormatter.
func (MetricFormatter) FormatDistance(meters float64) string {
	if meters < 10 {
		return "Continue for less than 10 meters."
	}
	tens := math.Round(meters/10) * 10
	if tens < 1000 {
		return "Continue for " + humanize.FtoaWithDigits(tens, 0) + " meters."
	}
	km := math.Round(meters/100) / 10
	unit := " kilometers."
	if km == 1 {
		unit = " kilometer."
	}

	return "Continue for " + humanize.FtoaWithDigits(km, 1) + unit
}
