// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, edge filters, Result and sentinel errors.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/indoornav/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for vertices outside the walk.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (negative depth) is recorded and surfaced as ErrOptionViolation
// when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	// EdgeFilter skips edges by returning false.
	EdgeFilter func(e *core.Edge) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and
// a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		EdgeFilter: func(*core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from it stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search after d hops.
//
//	d > 0: limit to d hops
//	d == 0: explicit no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithEdgeFilter skips edges for which fn returns false. Several filters
// compose with AND.
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.EdgeFilter
		o.EdgeFilter = func(e *core.Edge) bool { return prev(e) && fn(e) }
	}
}

// OnLevel keeps edges whose level set includes v. Untagged edges are
// dropped.
func OnLevel(v float64) func(*core.Edge) bool {
	return func(e *core.Edge) bool { return e.Levels.Includes(v) }
}

// NoVertical drops stairs, escalators and elevator edges.
func NoVertical(e *core.Edge) bool { return e.Use == core.UsePlain }

// Result holds the outcome of a traversal.
type Result struct {
	// Start is the vertex the walk began at.
	Start string
	// Order lists vertices in visit sequence.
	Order []string
	// Depth maps each reached vertex to its hop count.
	Depth map[string]int
	// Parent maps each reached vertex but Start to the edge it was reached by.
	Parent map[string]*core.Edge
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the vertex sequence from Start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur].Other(cur)
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
