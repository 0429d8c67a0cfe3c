package nibtrie

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronized_ConcurrentInsert(t *testing.T) {
	t.Parallel()

	const (
		workers       = 8
		keysPerWorker = 500
	)

	tr, err := New(Config[uint64, uint64]{
		Accessor:     Uint64Accessor,
		Synchronized: true,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func(w uint64) {
			defer wg.Done()

			for i := uint64(0); i < keysPerWorker; i++ {
				key := w*keysPerWorker + i
				assert.NoError(t, tr.Insert(key, key*2))
			}
		}(uint64(w))
	}

	wg.Wait()

	require.Equal(t, workers*keysPerWorker, tr.Len())

	for key := uint64(0); key < workers*keysPerWorker; key++ {
		val, ok := tr.Search(key)

		require.True(t, ok, "key %d lost", key)
		require.Equal(t, key*2, val)
	}
}

func TestSynchronized_ConcurrentMixed(t *testing.T) {
	t.Parallel()

	const (
		workers       = 4
		keysPerWorker = 300
	)

	tr, err := New(Config[uint64, int]{
		Accessor:     Uint64Accessor,
		Synchronized: true,
	})
	require.NoError(t, err)

	// every worker owns a disjoint key range: insert it, search it, then
	// delete every other key
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func(w uint64) {
			defer wg.Done()

			base := w * keysPerWorker

			for i := uint64(0); i < keysPerWorker; i++ {
				assert.NoError(t, tr.Insert(base+i, int(i)))
			}

			for i := uint64(0); i < keysPerWorker; i++ {
				_, ok := tr.Search(base + i)
				assert.True(t, ok)
			}

			for i := uint64(0); i < keysPerWorker; i += 2 {
				assert.NoError(t, tr.Delete(base + i))
			}
		}(uint64(w))
	}

	wg.Wait()

	require.Equal(t, workers*keysPerWorker/2, tr.Len())

	for w := uint64(0); w < workers; w++ {
		for i := uint64(0); i < keysPerWorker; i++ {
			_, ok := tr.Search(w*keysPerWorker + i)
			require.Equal(t, i%2 == 1, ok, "key %d", w*keysPerWorker+i)
		}
	}
}
