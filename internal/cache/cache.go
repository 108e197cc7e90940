// Package cache provides the sharded, process-lifetime memo the registry
// stores resolved descriptors in. Entries are monotone: once written they
// are never evicted, expired, or replaced.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const numShards = 32

// shard is one partition of the memo.
type shard struct {
	mu    sync.RWMutex
	items map[string]any
}

// Store is the sharded memo. The zero value is not usable; call New.
type Store struct {
	shards [numShards]*shard
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an empty Store.
func New() *Store {
	s := &Store{}
	for i := 0; i < numShards; i++ {
		s.shards[i] = &shard{items: make(map[string]any)}
	}
	return s
}

func (s *Store) getShard(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%numShards]
}

// Get retrieves the value memoized under key.
func (s *Store) Get(key string) (any, bool) {
	sh := s.getShard(key)
	sh.mu.RLock()
	v, ok := sh.items[key]
	sh.mu.RUnlock()
	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return v, true
}

// SetIfAbsent memoizes value under key unless an entry already exists, and
// returns the entry that won. Concurrent first writers of the same key all
// observe the same stored value afterwards.
func (s *Store) SetIfAbsent(key string, value any) (any, bool) {
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if prev, ok := sh.items[key]; ok {
		return prev, false
	}
	sh.items[key] = value
	return value, true
}

// Stats holds hit/miss/entry counts.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int64
}

// Stats returns current statistics.
func (s *Store) Stats() Stats {
	var total int64
	for i := 0; i < numShards; i++ {
		sh := s.shards[i]
		sh.mu.RLock()
		total += int64(len(sh.items))
		sh.mu.RUnlock()
	}
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Entries: total}
}
