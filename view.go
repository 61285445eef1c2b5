package remap

import (
	"fmt"

	"github.com/BurntPizza/remap/internal/raw"
)

// MapView applies f to every element of v in increasing index order,
// converting in place over memory whose allocation is owned elsewhere.
// Only equal strides are legal: a view cannot change size or reallocate,
// not even its metadata. Any stride mismatch is a precondition error
// returned before any element is touched.
//
// On success the result reinterprets v's memory at type B, with capacity
// clamped to the length: a view carries no capacity authority over the
// underlying allocation.
//
// MapView consumes v in the same sense as Map: the caller must not use v
// after the call. On a panic in f the same cleanup as for owned buffers
// runs and the viewed memory is zeroed, so no mixed-type state is left
// behind for the owner of the allocation.
func MapView[A, B any](v []A, f func(A) B, opts ...Option[A, B]) ([]B, error) {
	return mapView(v, func(a A) (B, error) { return f(a), nil }, newConfig(opts))
}

// TryMapView is MapView for conversion functions that can fail, with the
// same abort semantics as TryMap.
func TryMapView[A, B any](v []A, f func(A) (B, error), opts ...Option[A, B]) ([]B, error) {
	return mapView(v, f, newConfig(opts))
}

func mapView[A, B any](v []A, f func(A) (B, error), cfg config[A, B]) ([]B, error) {
	sizeA, sizeB := raw.SizeOf[A](), raw.SizeOf[B]()
	if sizeA != sizeB {
		return nil, &ErrStrideMismatch{SrcSize: sizeA, DstSize: sizeB}
	}
	base := raw.Base(v)
	if err := checkReuse[A, B](strategyEqual, base, len(v)); err != nil {
		return nil, err
	}

	n := len(v)
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

	return raw.Recast[B](v, n, n), nil
}
