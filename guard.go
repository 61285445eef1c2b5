package remap

import (
	"unsafe"

	"github.com/BurntPizza/remap/internal/raw"
)

// guard restores element-cleanup invariants when a conversion aborts
// partway through. While armed it is the sole custodian of the buffer:
// slots [0, consumed-1) hold produced results, slot consumed-1 was moved
// into the call that failed, and slots [consumed, n) still hold untouched
// source values. Exactly one of those regions is valid for its type at
// every index.
//
// release runs under defer. It does not recover, so a panic in the
// conversion function propagates after cleanup.
type guard[A, B any] struct {
	base     unsafe.Pointer
	n        int
	consumed int
	armed    bool
	dropSrc  func(A)
	dropDst  func(B)
}

func arm[A, B any](base unsafe.Pointer, n int, cfg config[A, B]) *guard[A, B] {
	return &guard[A, B]{
		base:    base,
		n:       n,
		armed:   true,
		dropSrc: cfg.dropSrc,
		dropDst: cfg.dropDst,
	}
}

// disarm marks the conversion complete; release becomes a no-op.
func (g *guard[A, B]) disarm() {
	g.armed = false
}

func (g *guard[A, B]) release() {
	if !g.armed {
		return
	}
	g.armed = false

	// Produced results first, then the source tail. The element moved into
	// the failed call belongs to neither region.
	if g.dropDst != nil {
		for i := 0; i < g.consumed-1; i++ {
			g.dropDst(raw.Load[B](g.base, i))
		}
	}
	if g.dropSrc != nil {
		for i := g.consumed; i < g.n; i++ {
			g.dropSrc(raw.Load[A](g.base, i))
		}
	}

	// The buffer is now logically empty. Wiping drops any heap references
	// and leaves the caller's dead handle holding only zero values. Slots
	// already converted hold B values, but a pointer-bearing A implies the
	// equal-stride path, where B's pointer layout is identical, so A-typed
	// stores barrier every pointer word either way.
	raw.Wipe[A](g.base, g.n)
}
