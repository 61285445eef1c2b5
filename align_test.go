//go:build amd64 || arm64

package remap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A [2]uint32 is 8 bytes with 4-byte alignment, so a window starting 4
// bytes into an 8-aligned allocation is valid for [2]uint32 but not for
// uint64.
func TestMap_MisalignedForDestination(t *testing.T) {
	backing := make([]uint32, 5)
	require.Zero(t, uintptr(unsafe.Pointer(&backing[0]))%8, "heap allocations of this size are 8-aligned")

	s := unsafe.Slice((*[2]uint32)(unsafe.Pointer(&backing[1])), 2)
	calls := 0

	_, err := MapView(s, func(x [2]uint32) uint64 {
		calls++
		return uint64(x[0])
	})
	require.Error(t, err)

	var e *ErrMisaligned
	require.ErrorAs(t, err, &e)
	assert.Equal(t, uintptr(8), e.Align)
	assert.Zero(t, calls)
}

func TestMap_AlignedForDestination(t *testing.T) {
	s := [][2]uint32{{1, 2}, {3, 4}}

	out, err := Map(s, func(x [2]uint32) uint64 { return uint64(x[0])<<32 | uint64(x[1]) })
	require.NoError(t, err)
	assert.Equal(t, []uint64{1<<32 | 2, 3<<32 | 4}, out)
}
