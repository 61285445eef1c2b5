package remap

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedStride is returned when the relationship between the
	// source and destination element sizes rules out the conversion.
	ErrUnsupportedStride = errors.New("unsupported stride relationship")
)

// ErrGrowth indicates an owned-buffer conversion to a strictly larger
// element type, which cannot be done in place.
type ErrGrowth struct {
	SrcSize uintptr
	DstSize uintptr
}

func (e *ErrGrowth) Error() string {
	return fmt.Sprintf("cannot grow elements in place: source stride %d < destination stride %d", e.SrcSize, e.DstSize)
}

func (e *ErrGrowth) Unwrap() error { return ErrUnsupportedStride }

// ErrStrideMismatch indicates a view conversion between element types of
// different sizes. A borrowed view cannot change size or reallocate, so
// only equal strides are legal.
type ErrStrideMismatch struct {
	SrcSize uintptr
	DstSize uintptr
}

func (e *ErrStrideMismatch) Error() string {
	return fmt.Sprintf("view stride mismatch: source stride %d, destination stride %d", e.SrcSize, e.DstSize)
}

func (e *ErrStrideMismatch) Unwrap() error { return ErrUnsupportedStride }

// ErrIndivisibleCapacity indicates that the capacity of the source
// allocation, in bytes, is not an exact multiple of the destination stride.
// The shrinking conversion refuses rather than silently truncating the
// capacity.
type ErrIndivisibleCapacity struct {
	CapBytes uintptr
	DstSize  uintptr
}

func (e *ErrIndivisibleCapacity) Error() string {
	return fmt.Sprintf("capacity (%d bytes) is not a multiple of destination stride (%d bytes)", e.CapBytes, e.DstSize)
}

func (e *ErrIndivisibleCapacity) Unwrap() error { return ErrUnsupportedStride }

// ErrPointerLayout indicates that reusing the backing array would
// desynchronize the allocation's GC pointer bitmap: the source and
// destination types place pointer words differently.
type ErrPointerLayout struct {
	Src reflect.Type
	Dst reflect.Type
}

func (e *ErrPointerLayout) Error() string {
	return fmt.Sprintf("incompatible pointer layouts: %s -> %s", e.Src, e.Dst)
}

// ErrMisaligned indicates that the backing array does not meet the
// destination type's alignment requirement.
type ErrMisaligned struct {
	Addr  uintptr
	Align uintptr
}

func (e *ErrMisaligned) Error() string {
	return fmt.Sprintf("backing array at 0x%x is not aligned to %d bytes", e.Addr, e.Align)
}
