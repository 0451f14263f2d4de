// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: strict tokenizer for level descriptors.
// Determinism:
//   - Output order mirrors token order; nothing is sorted, merged or reordered.

package level

import (
	"strconv"
	"strings"
)

// separators accepted between tokens.
const separators = ";,"

// Parse converts a descriptor such as "-2;-1;0-3" into a Set.
//
// A bare number yields a single-valued range, "a-b" yields {a, b} as written
// (no reordering when a > b). Whitespace around tokens and around the bounds of
// a range is ignored. Any bad token fails the whole descriptor with a
// *ParseError; callers treat the owner as having no level information.
//
// Complexity: O(len(descriptor)).
func Parse(descriptor string) (Set, error) {
	raw := splitTokens(descriptor)
	out := make(Set, 0, len(raw))
	for i, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, &ParseError{Kind: EmptyToken, Descriptor: descriptor, Token: tok, Index: i}
		}
		r, ok := parseToken(tok)
		if !ok {
			return nil, &ParseError{Kind: MalformedNumber, Descriptor: descriptor, Token: tok, Index: i}
		}
		out = append(out, r)
	}

	return out, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(descriptor string) Set {
	s, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}

	return s
}

// splitTokens splits on any separator and keeps empty tokens so they can be
// reported. An empty descriptor yields one empty token.
func splitTokens(descriptor string) []string {
	var out []string
	start := 0
	for i := 0; i < len(descriptor); i++ {
		if strings.IndexByte(separators, descriptor[i]) >= 0 {
			out = append(out, descriptor[start:i])
			start = i + 1
		}
	}

	return append(out, descriptor[start:])
}

// parseToken parses "number" or "number-number".
func parseToken(tok string) (Range, bool) {
	// The range dash is the first '-' that follows a digit; a leading '-' or
	// one right after the range dash is a sign.
	for i := 1; i < len(tok); i++ {
		if tok[i] != '-' {
			continue
		}
		prev := tok[i-1]
		if !isDigit(prev) && prev != ' ' {
			continue
		}
		lo, okLo := parseNumber(strings.TrimSpace(tok[:i]))
		hi, okHi := parseNumber(strings.TrimSpace(tok[i+1:]))
		if !okLo || !okHi {
			return Range{}, false
		}

		return Range{Start: lo, End: hi}, true
	}

	v, ok := parseNumber(tok)
	if !ok {
		return Range{}, false
	}

	return Single(v), true
}

// parseNumber accepts ['-'] digits ['.' digits] only; exponents, '+', leading
// dots, "inf" and "NaN" are rejected before strconv sees them.
func parseNumber(s string) (float64, bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == intStart {
		return 0, false
	}
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return 0, false
		}
	}
	if i != len(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
