package raw

import (
	"unsafe"
)

// SizeOf returns the stride of T in bytes.
func SizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// AlignOf returns the alignment requirement of T in bytes.
func AlignOf[T any]() uintptr {
	var v T
	return unsafe.Alignof(v)
}

// Base returns the address of the backing array of s, or nil if s has none.
func Base[T any](s []T) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s)) //nolint:gosec // unsafe is required for slice recasting
}

// Recast returns a slice of Dst with the given length and capacity over the
// same backing array as s. No bytes are copied.
//
// The caller must ensure that length and capacity describe memory actually
// owned by s's backing array at Dst's stride, and that s meets Dst's
// alignment requirement.
func Recast[Dst, Src any](s []Src, length, capacity int) []Dst {
	p := (*Dst)(unsafe.Pointer(unsafe.SliceData(s))) //nolint:gosec // unsafe is required for slice recasting
	return unsafe.Slice(p, capacity)[:length]
}

// Load moves the element at index i out of a region of Ts based at p.
// The slot's bytes are left unchanged.
func Load[T any](p unsafe.Pointer, i int) T {
	var v T
	return *(*T)(unsafe.Add(p, uintptr(i)*unsafe.Sizeof(v))) //nolint:gosec // unsafe is required for strided access
}

// Store writes v into the slot at index i of a region of Ts based at p.
func Store[T any](p unsafe.Pointer, i int, v T) {
	*(*T)(unsafe.Add(p, uintptr(i)*unsafe.Sizeof(v))) = v //nolint:gosec // unsafe is required for strided access
}

// Zero clears n bytes starting at p. The region must not hold pointer
// words: a bytewise clear skips the garbage collector's write barriers, so
// overwriting a live pointer this way can hide its pointee from a
// concurrent mark phase. Use Wipe for typed memory.
func Zero(p unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	clear(unsafe.Slice((*byte)(p), n)) //nolint:gosec // unsafe is required for untyped clearing
}

// Wipe clears n slots of Ts based at p. Pointer-bearing types are cleared
// slot by slot with typed stores so every pointer overwrite passes through
// a write barrier; pointer-free memory is cleared bytewise.
func Wipe[T any](p unsafe.Pointer, n int) {
	if n == 0 {
		return
	}
	if HasPointers[T]() {
		var zero T
		for i := 0; i < n; i++ {
			Store(p, i, zero)
		}
		return
	}
	Zero(p, uintptr(n)*SizeOf[T]())
}
