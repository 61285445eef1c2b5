package remap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Conversions of distinct buffers are independent; this mainly matters
// under the race detector.
func TestMap_ConcurrentBuffers(t *testing.T) {
	const (
		workers = 16
		n       = 1024
	)

	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			s := make([]uint64, n)
			for i := range s {
				s[i] = uint64(w)<<32 | uint64(i)
			}

			out, err := Map(s, func(x uint64) uint32 { return uint32(x) + uint32(x>>32) })
			if err != nil {
				return err
			}
			for i, v := range out {
				if want := uint32(i + w); v != want {
					return fmt.Errorf("worker %d: element %d: got %d, want %d", w, i, v, want)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestTryMap_ConcurrentAborts(t *testing.T) {
	const workers = 8

	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			s := []uint32{1, 2, 3, 4}
			_, err := TryMap(s, func(x uint32) (uint32, error) {
				if x == 3 {
					return 0, errBoom
				}
				return x, nil
			})
			if err == nil {
				return fmt.Errorf("worker %d: expected abort", w)
			}
			for i, v := range s {
				if v != 0 {
					return fmt.Errorf("worker %d: element %d not zeroed: %d", w, i, v)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
