package remap

import (
	"fmt"
	"reflect"
	"slices"
	"unsafe"

	"github.com/BurntPizza/remap/internal/conv"
	"github.com/BurntPizza/remap/internal/raw"
)

// strategy is the closed set of stride relationships the transformers
// handle. Selection is a runtime size comparison; each strategy is an
// independent code path.
type strategy int

const (
	// strategyEqual converts in place at matching offsets; capacity and
	// base address are preserved. Covers the zero/zero case, where no
	// memory is touched but f still runs once per element.
	strategyEqual strategy = iota
	// strategyShrink packs smaller destination elements at the front of
	// the same allocation. The write for index i never reaches into source
	// slot i+1, so strictly increasing index order keeps reads ahead of
	// writes.
	strategyShrink
	// strategyZeroDst accumulates zero-stride results by ordinary append;
	// a zero-stride region cannot contain len placeholders at a non-zero
	// stride base, so address stability is not guaranteed.
	strategyZeroDst
)

// planOwned selects the strategy for an owned conversion and computes the
// destination capacity. All stride preconditions are checked here, before
// any element access.
func planOwned[A, B any](capacity int) (strategy, int, error) {
	sizeA, sizeB := raw.SizeOf[A](), raw.SizeOf[B]()
	switch {
	case sizeA == sizeB:
		return strategyEqual, capacity, nil
	case sizeA < sizeB:
		return 0, 0, &ErrGrowth{SrcSize: sizeA, DstSize: sizeB}
	case sizeB == 0:
		return strategyZeroDst, 0, nil
	}

	capU, err := conv.IntToUintptr(capacity)
	if err != nil {
		return 0, 0, fmt.Errorf("capacity: %w", err)
	}
	capBytes, err := conv.MulUintptr(capU, sizeA)
	if err != nil {
		return 0, 0, fmt.Errorf("capacity: %w", err)
	}
	if capBytes%sizeB != 0 {
		return 0, 0, &ErrIndivisibleCapacity{CapBytes: capBytes, DstSize: sizeB}
	}
	dstCap, err := conv.UintptrToInt(capBytes / sizeB)
	if err != nil {
		return 0, 0, fmt.Errorf("capacity: %w", err)
	}
	return strategyShrink, dstCap, nil
}

// checkReuse validates the Go-specific preconditions for reinterpreting the
// backing array: compatible GC pointer layouts, and the destination's
// alignment requirement. strategyZeroDst allocates fresh memory and is
// exempt.
func checkReuse[A, B any](st strategy, base unsafe.Pointer, n int) error {
	if st == strategyZeroDst {
		return nil
	}

	srcPtrs, dstPtrs := raw.Pointers[A](), raw.Pointers[B]()
	switch st {
	case strategyEqual:
		if !slices.Equal(srcPtrs, dstPtrs) {
			return &ErrPointerLayout{Src: reflect.TypeOf((*A)(nil)).Elem(), Dst: reflect.TypeOf((*B)(nil)).Elem()}
		}
	case strategyShrink:
		// Destination slots land at arbitrary offsets relative to the
		// allocation's bitmap, so neither side may hold pointers.
		if len(srcPtrs) != 0 || len(dstPtrs) != 0 {
			return &ErrPointerLayout{Src: reflect.TypeOf((*A)(nil)).Elem(), Dst: reflect.TypeOf((*B)(nil)).Elem()}
		}
	}

	if alignB := raw.AlignOf[B](); alignB > raw.AlignOf[A]() && n > 0 {
		if addr := uintptr(base); addr%alignB != 0 {
			return &ErrMisaligned{Addr: addr, Align: alignB}
		}
	}
	return nil
}

// CanReuse reports whether mapping []A to []B can keep the backing array.
// It considers only the stride relationship: equal strides always reuse,
// shrinking reuses subject to the per-call capacity divisibility and
// pointer-layout checks, and everything else allocates or is rejected.
// Callers must treat reuse as a performance property, not a correctness
// one.
func CanReuse[A, B any]() bool {
	sizeA, sizeB := raw.SizeOf[A](), raw.SizeOf[B]()
	switch {
	case sizeA == sizeB:
		return true
	case sizeA < sizeB, sizeB == 0:
		return false
	default:
		return true
	}
}
