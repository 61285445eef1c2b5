// Package remap transforms the element type of a slice in place.
//
// Given a []A and a conversion function f, Map produces a []B of the same
// length, reusing the original backing array whenever the stride
// relationship between A and B permits, instead of allocating a new slice
// and copying. MapView does the same for a borrowed window of memory whose
// allocation is owned elsewhere.
//
// # Quick Start
//
//	squares, err := remap.Map(xs, func(x uint32) int32 { return int32(x * x) })
//
// The call consumes xs: its elements are moved into f one by one and the
// backing array is reinterpreted for the result. The caller must not use xs
// afterwards.
//
// # Reuse Rules
//
// Reuse happens at matching indices when the strides are equal, or packed
// at the front of the allocation when B is strictly smaller than A (the
// capacity in bytes must divide evenly by B's stride). Mapping to a larger
// element type is rejected up front: the packed destination would overrun
// source elements not yet read. A zero-stride destination under a non-zero
// source falls back to an ordinary append loop, so address stability is not
// guaranteed there. Address stability is a performance property, never a
// correctness one; use CanReuse to test for it.
//
// Because reuse reinterprets an allocation the garbage collector laid out
// for A, the pointer layouts of A and B must be compatible: identical when
// the strides are equal, and free of pointers entirely when they differ.
// Incompatible layouts are reported as precondition errors before any
// element is touched.
//
// # Cleanup Hooks
//
// Element types that own external resources can register drop hooks via
// WithSourceDrop and WithResultDrop. If f panics partway through, or
// returns an error under TryMap, the hooks run over exactly the elements
// that still hold valid values: results produced so far in index order,
// then the source tail that was never read. The element in flight inside
// the failed call is never handed to a hook twice. After cleanup the
// original memory is zeroed and the panic or error propagates; the buffer
// is gone either way.
//
// # Concurrency
//
// A conversion is fully synchronous and owns its buffer for the duration of
// the call. Distinct buffers may be converted concurrently; a single buffer
// must not be shared with anything else while a conversion runs.
package remap
