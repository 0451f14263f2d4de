// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: ASCII drawing -> node coordinates.
//
// Complexity:
//   - Time O(len(ascii)), Space O(nodes).

package builder

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Bearings used to walk the grid.
const (
	bearingEast  = 90.0
	bearingSouth = 180.0
)

// Layout maps node names to positions.
type Layout map[string]orb.Point

// Names returns the node names sorted ascending.
func (l Layout) Names() []string {
	out := make([]string, 0, len(l))
	for n := range l {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// ParseLayout converts an ASCII drawing into node positions. Every letter or
// digit is a node; its column and row (after removing the common indentation)
// are scaled by the grid size and laid out east and south of the origin.
//
// Errors: ErrEmptyLayout, ErrDuplicateNode.
func ParseLayout(ascii string, opts ...BuilderOption) (Layout, error) {
	cfg := newBuilderConfig(opts...)

	lines := strings.Split(ascii, "\n")
	indent := commonIndent(lines)

	out := make(Layout)
	row := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for col, r := range []rune(line) {
			if col < indent || !isNode(r) {
				continue
			}
			name := string(r)
			if _, dup := out[name]; dup {
				return nil, fmt.Errorf("ParseLayout: %q at row %d col %d: %w", name, row, col, ErrDuplicateNode)
			}
			east := geo.PointAtBearingAndDistance(cfg.origin, bearingEast, float64(col-indent)*cfg.gridSize)
			out[name] = geo.PointAtBearingAndDistance(east, bearingSouth, float64(row)*cfg.gridSize)
		}
		row++
	}
	if len(out) == 0 {
		return nil, ErrEmptyLayout
	}

	return out, nil
}

func isNode(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// commonIndent is the smallest count of leading spaces over non-blank lines.
func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len([]rune(line)) - len([]rune(strings.TrimLeft(line, " \t")))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	return max(indent, 0)
}
