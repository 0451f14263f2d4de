// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Range/Set value types, sentinel errors and the typed ParseError.

package level

import (
	"errors"
	"fmt"
)

// Epsilon absorbs floating round-off from quarter-level arithmetic.
const Epsilon = 1e-3

// Sentinel errors for descriptor parsing.
var (
	// ErrEmptyToken indicates an empty token (e.g. "1;;2" or "").
	ErrEmptyToken = errors.New("level: empty token")

	// ErrMalformedNumber indicates a token that does not follow the number grammar.
	ErrMalformedNumber = errors.New("level: malformed number")

	// ErrInvalidExternal indicates an external level array that is not a pair.
	ErrInvalidExternal = errors.New("level: invalid external level")
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	// MalformedNumber marks a token with an unparsable number.
	MalformedNumber ParseErrorKind = iota
	// EmptyToken marks an empty token.
	EmptyToken
)

// String returns a short name of the kind.
func (k ParseErrorKind) String() string {
	switch k {
	case MalformedNumber:
		return "malformed number"
	case EmptyToken:
		return "empty token"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError reports why a descriptor was rejected.
// It unwraps to ErrMalformedNumber or ErrEmptyToken.
type ParseError struct {
	Kind       ParseErrorKind
	Descriptor string // full input
	Token      string // offending token, trimmed
	Index      int    // 0-based token index
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("level: %s at token %d (%q) in descriptor %q", e.Kind, e.Index, e.Token, e.Descriptor)
}

// Unwrap exposes the sentinel matching Kind for errors.Is.
func (e *ParseError) Unwrap() error {
	if e.Kind == EmptyToken {
		return ErrEmptyToken
	}

	return ErrMalformedNumber
}

// Range is a closed interval [Start, End] of levels.
// A single level has Start == End.
type Range struct {
	Start float64
	End   float64
}

// Single returns a one-level range.
func Single(v float64) Range { return Range{Start: v, End: v} }

// IsSingle reports whether the range denotes exactly one level.
func (r Range) IsSingle() bool { return r.Start == r.End }

// Contains reports whether v lies within Epsilon of [Start, End].
func (r Range) Contains(v float64) bool {
	return r.Start-Epsilon <= v && v <= r.End+Epsilon
}

// Set is the ordered list of ranges owned by one edge or node.
// A nil or empty Set means "no level information".
type Set []Range

// Equal reports whether two levels are the same floor within Epsilon.
func Equal(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= Epsilon
}
