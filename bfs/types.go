// Package bfs provides tunable options and error definitions for the
// breadth-first level generator.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for level generation.
var (
	// ErrExpanderNil is returned if a nil Expander is passed to Walk.
	ErrExpanderNil = errors.New("bfs: expander is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Level pairs one emitted depth with its frontier:
//   - Depth: distance (in expansion steps) from the seed, starting at 0.
//   - Nodes: every node at that depth, in discovery order.
type Level[T comparable] struct {
	Depth int
	Nodes []T
}

// Option configures Walk behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Walk is invoked.
type Option[T comparable] func(*WalkOptions[T])

// WalkOptions holds parameters and callbacks to customize level generation.
type WalkOptions[T comparable] struct {
	// MaxDepth, if > 0, stops the sequence after emitting that depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnLevel is called for each emitted (depth, frontier) pair, just
	// before the pair is handed to the consumer.
	OnLevel func(depth int, frontier []T)

	// FilterChild can drop a discovered child from the next frontier by
	// returning false. Called for each parent→child discovery.
	FilterChild func(parent, child T) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a WalkOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all children kept)
//   - no-op OnLevel hook
func DefaultOptions[T comparable]() WalkOptions[T] {
	return WalkOptions[T]{
		MaxDepth:    0,
		OnLevel:     func(int, []T) {},
		FilterChild: func(_, _ T) bool { return true },
		err:         nil,
	}
}

// WithMaxDepth stops the sequence after the given depth has been emitted.
//
//	d > 0:  emit levels 0..d only
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *WalkOptions[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnLevel registers a callback to run for each emitted pair.
func WithOnLevel[T comparable](fn func(depth int, frontier []T)) Option[T] {
	return func(o *WalkOptions[T]) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithFilterChild drops discovered children when fn returns false.
// Filtering prunes the next frontier only; it never marks anything visited,
// so a child filtered under one parent may still be discovered via another.
func WithFilterChild[T comparable](fn func(parent, child T) bool) Option[T] {
	return func(o *WalkOptions[T]) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}
