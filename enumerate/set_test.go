package enumerate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmendel/so6enum/so6"
)

// TestMatrixSet_InsertDedups: the same canonical class inserts once,
// whichever physical representative arrives.
func TestMatrixSet_InsertDedups(t *testing.T) {
	s := newMatrixSet()

	a, err := so6.Replay("0 9")
	require.NoError(t, err)
	b, err := so6.Replay("9 0") // commuting pair: same canonical class
	require.NoError(t, err)

	assert.True(t, s.Insert(a))
	assert.False(t, s.Insert(b))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(a.Key()))
	assert.True(t, s.Contains(b.Key()))
}

// TestMatrixSet_ConcurrentInsert: racing inserts of the same class
// produce exactly one winner.
func TestMatrixSet_ConcurrentInsert(t *testing.T) {
	s := newMatrixSet()
	m, err := so6.Replay("0 9 14")
	require.NoError(t, err)

	const goroutines = 16
	wins := make(chan bool, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- s.Insert(m.Clone())
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for w := range wins {
		if w {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, s.Len())
}

// TestMatrixSet_Members snapshots every inserted matrix.
func TestMatrixSet_Members(t *testing.T) {
	s := newMatrixSet()
	for _, c := range []string{"0", "0 9", "0 9 14"} {
		m, err := so6.Replay(c)
		require.NoError(t, err)
		require.True(t, s.Insert(m))
	}
	assert.Len(t, s.Members(), 3)
}
