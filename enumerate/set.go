package enumerate

import (
	"sync"

	"github.com/tmendel/so6enum/so6"
)

// setShards spreads insertion contention; a power of two keeps the
// shard pick a mask operation.
const setShards = 64

// matrixSet is a sharded concurrent set of canonical matrices, keyed by
// Matrix.Key. Insertions race benignly: the first writer wins and the
// loser learns it lost, which is exactly the deduplication contract the
// driver needs.
type matrixSet struct {
	shards [setShards]matrixShard
}

type matrixShard struct {
	mu sync.Mutex
	m  map[string]*so6.Matrix
}

func newMatrixSet() *matrixSet {
	s := &matrixSet{}
	for i := range s.shards {
		s.shards[i].m = make(map[string]*so6.Matrix)
	}
	return s
}

// shardFor hashes a key with FNV-1a and masks it onto a shard.
func (s *matrixSet) shardFor(key string) *matrixShard {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	return &s.shards[h&(setShards-1)]
}

// Insert adds m under its canonical key, reporting whether m was new.
func (s *matrixSet) Insert(m *so6.Matrix) bool {
	key := m.Key()
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.m[key]; ok {
		return false
	}
	sh.m[key] = m
	return true
}

// Contains reports membership by canonical key.
func (s *matrixSet) Contains(key string) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_, ok := sh.m[key]
	return ok
}

// Len counts members across shards.
func (s *matrixSet) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.Lock()
		n += len(s.shards[i].m)
		s.shards[i].mu.Unlock()
	}
	return n
}

// Members snapshots the set into a slice. Only called between levels,
// when the set is no longer written.
func (s *matrixSet) Members() []*so6.Matrix {
	out := make([]*so6.Matrix, 0, s.Len())
	for i := range s.shards {
		s.shards[i].mu.Lock()
		for _, m := range s.shards[i].m {
			out = append(out, m)
		}
		s.shards[i].mu.Unlock()
	}
	return out
}
