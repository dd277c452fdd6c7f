package enumerate

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmendel/so6enum/pattern"
	"github.com/tmendel/so6enum/so6"
)

// genPattern projects T_i applied to the identity.
func genPattern(t *testing.T, i int) pattern.Pattern {
	t.Helper()
	m, err := so6.Identity().LeftMulT(i)
	require.NoError(t, err)
	return m.ToPattern()
}

// TestNewChecklist_DropsIdentityAndCaseZero: identity-like patterns
// never make it onto the list.
func TestNewChecklist_DropsIdentityAndCaseZero(t *testing.T) {
	c := NewChecklist([]pattern.Pattern{
		pattern.Identity(),
		pattern.Identity().Mod(),
		genPattern(t, 0),
	})
	assert.Equal(t, 1, c.Len())
}

// TestChecklist_HitOnceOnly: the first hit claims the pattern, repeats
// stay silent.
func TestChecklist_HitOnceOnly(t *testing.T) {
	p := genPattern(t, 0)
	c := NewChecklist([]pattern.Pattern{p})

	assert.True(t, c.Hit(p))
	assert.False(t, c.Hit(p))
}

// TestChecklist_RemoveOrbit clears every row-permuted and row-modded
// variant in one sweep.
func TestChecklist_RemoveOrbit(t *testing.T) {
	p := genPattern(t, 0)
	swapped := p.PermuteRows([6]int{5, 4, 3, 2, 1, 0})
	modded := p.Mod()

	c := NewChecklist([]pattern.Pattern{p, swapped, modded, genPattern(t, 1)})
	require.Equal(t, 4, c.Len())

	require.True(t, c.Hit(p))
	c.RemoveOrbit(p)

	assert.Equal(t, 1, c.Len(), "only the unrelated pattern survives")
	assert.False(t, c.Hit(swapped))
	assert.True(t, c.Hit(genPattern(t, 1)))
}

// TestChecklist_ConcurrentHit: one winner per pattern under contention.
func TestChecklist_ConcurrentHit(t *testing.T) {
	p := genPattern(t, 0)
	c := NewChecklist([]pattern.Pattern{p})

	const goroutines = 16
	wins := make(chan bool, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- c.Hit(p)
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
}

// TestReadChecklist parses the wire format end to end.
func TestReadChecklist(t *testing.T) {
	p := genPattern(t, 0)
	c, err := ReadChecklist(strings.NewReader(p.String() + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Hit(p))

	_, err = ReadChecklist(strings.NewReader("101\n"))
	assert.ErrorIs(t, err, pattern.ErrMalformedPattern)
}

// TestChecklist_NilSafe: a nil checklist behaves as an empty one.
func TestChecklist_NilSafe(t *testing.T) {
	var c *Checklist
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Hit(genPattern(t, 0)))
	c.RemoveOrbit(genPattern(t, 0))
}
