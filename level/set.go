// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: membership queries, representative values and external rendering.

package level

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Includes reports whether some range of s contains v within Epsilon.
// An empty set includes nothing.
func (s Set) Includes(v float64) bool {
	for _, r := range s {
		if r.Contains(v) {
			return true
		}
	}

	return false
}

// Includes is the free-function form of Set.Includes used by filters.
func Includes(s Set, v float64) bool { return s.Includes(v) }

// Empty reports whether s carries no level information.
func (s Set) Empty() bool { return len(s) == 0 }

// SingleValue returns the level when s denotes exactly one floor.
func (s Set) SingleValue() (float64, bool) {
	if len(s) != 1 || !s[0].IsSingle() {
		return 0, false
	}

	return s[0].Start, true
}

// Min returns the lowest bound over all ranges (false for an empty set).
func (s Set) Min() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	m := s[0].Start
	for _, r := range s {
		m = min(m, r.Start, r.End)
	}

	return m, true
}

// Max returns the highest bound over all ranges (false for an empty set).
func (s Set) Max() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	m := s[0].End
	for _, r := range s {
		m = max(m, r.Start, r.End)
	}

	return m, true
}

// Representative is the level used when nothing else disambiguates an
// entity: its single value, or its lowest range start.
func (s Set) Representative() (float64, bool) {
	if v, ok := s.SingleValue(); ok {
		return v, true
	}
	if len(s) == 0 {
		return 0, false
	}
	m := s[0].Start
	for _, r := range s[1:] {
		m = min(m, r.Start)
	}

	return m, true
}

// Farthest returns the bound of s farthest from v; ties resolve to the higher
// level. It is the endpoint reached when a multi-level edge is traversed
// starting from v.
func (s Set) Farthest(v float64) (float64, bool) {
	lo, ok := s.Min()
	if !ok {
		return 0, false
	}
	hi, _ := s.Max()
	if v-lo > hi-v {
		return lo, true
	}

	return hi, true
}

// String renders s back into descriptor form, e.g. "-1;0-2".
func (s Set) String() string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(formatNumber(r.Start))
		if !r.IsSingle() {
			b.WriteByte('-')
			b.WriteString(formatNumber(r.End))
		}
	}

	return b.String()
}

// ExternalLevel is one range as consumed by response rendering: a bare
// number for a single level, a [start, end] pair otherwise.
type ExternalLevel struct {
	Start float64
	End   float64
}

// IsSingle reports whether the entry renders as a bare number.
func (e ExternalLevel) IsSingle() bool { return e.Start == e.End }

// Value returns the rendered value: float64 or [2]float64.
func (e ExternalLevel) Value() any {
	if e.IsSingle() {
		return e.Start
	}

	return [2]float64{e.Start, e.End}
}

// MarshalJSON renders 2.5 or [0,2.5].
func (e ExternalLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Value())
}

// UnmarshalJSON accepts both shapes produced by MarshalJSON.
func (e *ExternalLevel) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("level: external level %s: want [start,end], got %d values: %w", data, len(pair), ErrInvalidExternal)
		}
		e.Start, e.End = pair[0], pair[1]
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	e.Start, e.End = v, v

	return nil
}

// External renders s in parse order.
func (s Set) External() []ExternalLevel {
	out := make([]ExternalLevel, len(s))
	for i, r := range s {
		out[i] = ExternalLevel{Start: r.Start, End: r.End}
	}

	return out
}

// External is the free-function form of Set.External.
func External(s Set) []ExternalLevel { return s.External() }

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
