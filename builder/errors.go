// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.
//   - Option constructors panic on meaningless values; Build never panics.

package builder

import "errors"

// ErrEmptyLayout indicates a layout without any node characters.
var ErrEmptyLayout = errors.New("builder: layout has no nodes")

// ErrDuplicateNode indicates the same node character drawn twice.
var ErrDuplicateNode = errors.New("builder: duplicate node in layout")

// ErrUnknownNode indicates a way or node table entry naming a node that is not drawn.
var ErrUnknownNode = errors.New("builder: unknown node")

// ErrBadWay indicates a way key with fewer than two nodes.
var ErrBadWay = errors.New("builder: way needs at least two nodes")

// ErrOptionViolation is the panic value of option constructors given meaningless input.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownFixture indicates a fixture name that is not registered.
var ErrUnknownFixture = errors.New("builder: unknown fixture")
