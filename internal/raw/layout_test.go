//go:build amd64 || arm64

package raw

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestPointers_Scalars(t *testing.T) {
	assert.Empty(t, Pointers[int]())
	assert.Empty(t, Pointers[float64]())
	assert.Empty(t, Pointers[[8]byte]())
	assert.Empty(t, Pointers[struct{}]())
	assert.Empty(t, Pointers[uintptr](), "uintptr is an integer to the GC")
}

func TestPointers_SingleWord(t *testing.T) {
	assert.Equal(t, []uintptr{0}, Pointers[*int]())
	assert.Equal(t, []uintptr{0}, Pointers[unsafe.Pointer]())
	assert.Equal(t, []uintptr{0}, Pointers[map[string]int]())
	assert.Equal(t, []uintptr{0}, Pointers[chan int]())
	assert.Equal(t, []uintptr{0}, Pointers[func()]())
}

func TestPointers_Headers(t *testing.T) {
	assert.Equal(t, []uintptr{0}, Pointers[string](), "only the data word of a string is a pointer")
	assert.Equal(t, []uintptr{0}, Pointers[[]int](), "only the data word of a slice is a pointer")
	assert.Equal(t, []uintptr{0, 8}, Pointers[any]())
	assert.Equal(t, []uintptr{0, 8}, Pointers[interface{ M() }]())
}

func TestPointers_Composite(t *testing.T) {
	type padded struct {
		A byte
		B *int
	}
	assert.Equal(t, []uintptr{8}, Pointers[padded]())

	type mixed struct {
		P *int
		N int
		S string
	}
	assert.Equal(t, []uintptr{0, 16}, Pointers[mixed]())

	assert.Equal(t, []uintptr{0, 8}, Pointers[[2]*int]())

	type nested struct {
		Pre  uint64
		Pair [2]padded
	}
	assert.Equal(t, []uintptr{16, 32}, Pointers[nested]())
}

func TestHasPointers(t *testing.T) {
	assert.False(t, HasPointers[uint64]())
	assert.True(t, HasPointers[string]())
	assert.True(t, HasPointers[[1][]byte]())
}

func TestPointers_Cached(t *testing.T) {
	first := Pointers[[4]*int]()
	second := Pointers[[4]*int]()
	assert.Equal(t, first, second)
}
