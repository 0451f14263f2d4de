// SPDX-License-Identifier: MIT

// Package label turns level values into the human text used in instructions.
//
// An explicit label supplied by upstream tagging (a "level:ref" such as
// "Parking" or "Lobby") always wins. Otherwise the numeric level is rendered
// as "Level N" with the fewest decimals needed: "Level 2", "Level 2.5",
// "Level -1".
package label

import (
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/indoornav/level"
)

// prefix of numeric labels.
const prefix = "Level "

// maxDigits bounds fractional digits of numeric labels; finer values are
// below level.Epsilon anyway.
const maxDigits = 3

// Level is a level value paired with its optional explicit label.
type Level struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"` // "" when none was tagged
}

// Text renders l via For.
func (l Level) Text() string { return For(l.Value, l.Label) }

// For returns explicit verbatim when non-empty, otherwise Format(value).
func For(value float64, explicit string) string {
	if explicit != "" {
		return explicit
	}

	return Format(value)
}

// Format renders a numeric level label.
func Format(value float64) string {
	if level.Equal(value, 0) {
		value = 0 // no "Level -0"
	}

	return prefix + humanize.FtoaWithDigits(value, maxDigits)
}

// Change is the omit-if-unchanged variant: it returns the label of end and
// true when the maneuver actually changes floor, "" and false otherwise.
// A missing end level never yields a label.
func Change(start, end *Level) (string, bool) {
	if end == nil {
		return "", false
	}
	if start != nil && level.Equal(start.Value, end.Value) {
		return "", false
	}

	return end.Text(), true
}
