// SPDX-License-Identifier: MIT

// Package level models the floor coordinate of indoor graph entities.
//
// A level is a float64: integers denote whole floors, fractional values
// (0.25 steps and finer) denote mezzanines. An edge or node carries a Set of
// closed ranges parsed from a textual descriptor such as "-1;0-2":
//
//	descriptor := token (';' token)*
//	token      := number | number '-' number
//	number     := ['-'] digits ['.' digits]
//
// Ranges keep their input order and are never merged or sorted, so External
// renders them exactly as authored. Membership (Includes) and equality (Equal)
// are epsilon-tolerant; the same comparison is used by the timeline builder,
// the maneuver combiner and the edge filter of the route package so that
// filtering and narration never disagree.
//
// Errors:
//
//	ErrEmptyToken      - an empty token between separators (or an empty descriptor).
//	ErrMalformedNumber - a token that is not a number or a number range.
//
// Both are reported wrapped in a *ParseError that names the offending token.
package level
