package remap

import (
	"fmt"

	"github.com/BurntPizza/remap/internal/raw"
)

// Map applies f to every element of s in increasing index order, reusing
// the backing array of s for the result whenever the stride relationship
// between A and B permits. On success the returned slice has the same
// length as s and, for equal or shrinking strides, the same base address
// and a capacity covering the whole original allocation.
//
// Map consumes s. The elements are moved out, not copied, and on the reuse
// paths the result aliases s's memory; the caller must not use s after the
// call. If f panics, registered drop hooks run over the elements that still
// hold valid values (see WithSourceDrop and WithResultDrop), the buffer is
// zeroed, and the panic propagates.
//
// A precondition error (growth, capacity divisibility, pointer layout,
// alignment) is returned before any element is touched, with s fully
// intact and still owned by the caller.
func Map[A, B any](s []A, f func(A) B, opts ...Option[A, B]) ([]B, error) {
	return mapOwned(s, func(a A) (B, error) { return f(a), nil }, newConfig(opts))
}

// TryMap is Map for conversion functions that can fail. An error from f
// aborts the conversion: the same cleanup as for a panic runs, s is
// consumed, and the error is returned wrapped. A failed call cannot be
// retried; the elements are already gone.
func TryMap[A, B any](s []A, f func(A) (B, error), opts ...Option[A, B]) ([]B, error) {
	return mapOwned(s, f, newConfig(opts))
}

func mapOwned[A, B any](s []A, f func(A) (B, error), cfg config[A, B]) ([]B, error) {
	st, dstCap, err := planOwned[A, B](cap(s))
	if err != nil {
		return nil, err
	}
	base := raw.Base(s)
	if err := checkReuse[A, B](st, base, len(s)); err != nil {
		return nil, err
	}
	if st == strategyZeroDst {
		return mapAppend(s, f, cfg)
	}

	n := len(s)
	g := arm(base, n, cfg)
	defer g.release()
	for i := 0; i < n; i++ {
		a := raw.Load[A](base, i)
		g.consumed = i + 1
		b, err := f(a)
		if err != nil {
			return nil, fmt.Errorf("convert element %d: %w", i, err)
		}
		raw.Store(base, i, b)
	}
	g.disarm()

	return raw.Recast[B](s, n, dstCap), nil
}

// mapAppend handles the zero-stride destination: results accumulate in a
// fresh length-zero slice instead of overwriting the source in place.
func mapAppend[A, B any](s []A, f func(A) (B, error), cfg config[A, B]) ([]B, error) {
	n := len(s)
	base := raw.Base(s)
	out := make([]B, 0, n)

	g := arm(base, n, cfg)
	defer g.release()
	for i := 0; i < n; i++ {
		a := raw.Load[A](base, i)
		g.consumed = i + 1
		b, err := f(a)
		if err != nil {
			return nil, fmt.Errorf("convert element %d: %w", i, err)
		}
		out = append(out, b)
	}
	g.disarm()

	// Source elements were all moved out; empty the allocation so the dead
	// handle holds no stale values or references.
	raw.Wipe[A](base, n)
	return out, nil
}
