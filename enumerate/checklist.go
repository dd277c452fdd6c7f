package enumerate

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tmendel/so6enum/pattern"
)

// Checklist is the concurrent set of still-wanted patterns. A pattern
// is "hit" when any generated matrix projects onto it; the hit removes
// the pattern's entire row-permutation/row-mod orbit, so equivalent
// matrices discovered later stay silent.
type Checklist struct {
	mu  sync.RWMutex
	set map[pattern.Key]pattern.Pattern
}

// NewChecklist builds a checklist from parsed patterns. Identity-like
// patterns (case 0) are dropped (they are hit by construction at
// T-count 0), as are the identity pattern and its mod.
func NewChecklist(patterns []pattern.Pattern) *Checklist {
	c := &Checklist{set: make(map[pattern.Key]pattern.Pattern, len(patterns))}
	for _, p := range patterns {
		p := p
		if p.Case() == 0 {
			continue
		}
		c.set[p.Key()] = p
	}
	id := pattern.Identity()
	delete(c.set, id.Key())
	delete(c.set, id.Mod().Key())
	return c
}

// LoadChecklist reads a pattern file. A missing or malformed file
// aborts startup.
func LoadChecklist(path string) (*Checklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("enumerate: opening pattern file: %w", err)
	}
	defer f.Close()
	return ReadChecklist(f)
}

// ReadChecklist parses a checklist from a reader.
func ReadChecklist(r io.Reader) (*Checklist, error) {
	ps, err := pattern.ParseFile(r)
	if err != nil {
		return nil, err
	}
	return NewChecklist(ps), nil
}

// Len reports the number of patterns still wanted.
func (c *Checklist) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.set)
}

// Hit claims p if it is still wanted: the winner removes p itself and
// returns true, every concurrent loser returns false. The caller that
// wins must follow up with RemoveOrbit.
func (c *Checklist) Hit(p pattern.Pattern) bool {
	if c == nil {
		return false
	}
	key := p.Key()

	c.mu.RLock()
	_, ok := c.set[key]
	c.mu.RUnlock()
	if !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.set[key]; !ok {
		return false
	}
	delete(c.set, key)
	return true
}

// RemoveOrbit erases every permutation-equivalent of p. The orbit is
// generated outside the lock; only the deletions serialise.
func (c *Checklist) RemoveOrbit(p pattern.Pattern) {
	if c == nil {
		return
	}
	orbit := p.Orbit()

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, q := range orbit {
		delete(c.set, q.Key())
	}
}
