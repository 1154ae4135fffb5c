// Package solve defines the consumer contract and tunable options for the
// Infinite Loop search.
package solve

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/pipetwist/infiniteloop/board"
)

// Sentinel errors for solver invocation.
var (
	// ErrNilProblem is returned if a nil problem pointer is passed.
	ErrNilProblem = errors.New("solve: problem is nil")

	// ErrNilConsumer is returned if no consumer is supplied.
	ErrNilConsumer = errors.New("solve: consumer is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Signal is a consumer's verdict after receiving a solution.
type Signal int

const (
	// Continue asks the solver to keep enumerating.
	Continue Signal = iota
	// Stop unwinds the search without producing further solutions.
	Stop
)

// Consumer receives each solution as it is discovered. Deliver is invoked
// synchronously on the search goroutine; the supplied Solution is a buffer
// the solver reuses, so a consumer that wants to retain it must copy it
// before returning.
type Consumer interface {
	Deliver(*board.Solution) Signal
}

// ConsumerFunc adapts a plain function to the Consumer interface.
type ConsumerFunc func(*board.Solution) Signal

// Deliver calls f.
func (f ConsumerFunc) Deliver(s *board.Solution) Signal { return f(s) }

// Selector names a branch-cell selection policy. Every policy picks some
// cell with two or more remaining rotations; the choice affects only the
// order in which solutions are delivered.
type Selector int

const (
	// SelectRandom draws uniformly among unresolved cells; seed it with
	// WithRand for reproducibility.
	SelectRandom Selector = iota
	// SelectFirst picks the first unresolved cell in row-major order.
	SelectFirst
	// SelectFewestOptions picks an unresolved cell with the smallest
	// remaining rotation mask (minimum remaining values).
	SelectFewestOptions
)

// Option configures Solve via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds parameters customizing a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked at every recursion
	// node. Defaults to context.Background().
	Ctx context.Context

	// Rand supplies the randomness for SelectRandom. When nil, Solve
	// creates a source seeded from the clock.
	Rand *rand.Rand

	// Selector chooses the branch-cell policy.
	Selector Selector

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a background context, clock-seeded randomness,
// and random branch-cell selection.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Rand:     nil,
		Selector: SelectRandom,
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

// WithRand fixes the random source used by SelectRandom.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSelector sets the branch-cell selection policy.
func WithSelector(sel Selector) Option {
	return func(o *Options) {
		if sel < SelectRandom || sel > SelectFewestOptions {
			o.err = fmt.Errorf("%w: unknown selector %d", ErrOptionViolation, sel)
			return
		}
		o.Selector = sel
	}
}
