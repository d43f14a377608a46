// Package argscache stores values produced for a key object together with the
// call signature they were produced for.
//
// Keys are held weakly: an entry collection lives only as long as something
// outside the cache references its key. Values must never reference their key,
// otherwise the key stays reachable through the cache and is never reclaimed.
package argscache

import (
	"runtime"
	"slices"
	"sync"
	"weak"

	"github.com/on-the-ground/memobind_go/shared/logging"
	"go.uber.org/zap"
)

// Entry is a produced value and the signature it was recorded with.
type Entry[V any] struct {
	Value     V
	Signature Signature
}

type shard[K, V any] struct {
	mu      sync.Mutex
	entries map[weak.Pointer[K]][]Entry[V]
}

// reclaimTarget is handed to the runtime cleanup of a key.
// It must not hold the key strongly.
type reclaimTarget[K any] struct {
	shardIdx int
	key      weak.Pointer[K]
}

// Cache maps key identity to an ordered collection of entries.
// All operations on one key run under the lock of the shard the key hashes to.
type Cache[K any, V any] struct {
	shards      []*shard[K, V]
	partitionOf func(*K) string
	logger      *zap.Logger
}

// New creates an empty cache. partitionOf must return a stable string for a
// key; it selects the shard. A nil logger disables logging.
func New[K any, V any](
	config Config,
	partitionOf func(*K) string,
	logger *zap.Logger,
) *Cache[K, V] {
	config = NewConfig(config.NumShards)
	shards := make([]*shard[K, V], config.NumShards)
	for i := range shards {
		shards[i] = &shard[K, V]{entries: make(map[weak.Pointer[K]][]Entry[V])}
	}
	return &Cache[K, V]{
		shards:      shards,
		partitionOf: partitionOf,
		logger:      logging.OrNop(logger),
	}
}

func (c *Cache[K, V]) locate(key *K) (int, weak.Pointer[K]) {
	return getIndexByHash(c.partitionOf(key), len(c.shards)), weak.Make(key)
}

// Has reports whether key has at least one recorded entry.
func (c *Cache[K, V]) Has(key *K) bool {
	idx, wp := c.locate(key)
	s := c.shards[idx]
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[wp]) > 0
}

// Get returns a copy of the entry collection of key.
func (c *Cache[K, V]) Get(key *K) ([]Entry[V], bool) {
	idx, wp := c.locate(key)
	s := c.shards[idx]
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.entries[wp]
	if !ok {
		return nil, false
	}
	return slices.Clone(entries), true
}

// Create stores an empty collection for key and returns it.
// If key already has a collection, a copy of it is returned unchanged.
func (c *Cache[K, V]) Create(key *K) []Entry[V] {
	idx, wp := c.locate(key)
	s := c.shards[idx]
	s.mu.Lock()
	defer s.mu.Unlock()
	if entries, ok := s.entries[wp]; ok {
		return slices.Clone(entries)
	}
	c.createLocked(s, idx, key, wp)
	return []Entry[V]{}
}

// Record appends a new entry for key, creating the collection if absent.
func (c *Cache[K, V]) Record(key *K, value V, sig Signature) {
	idx, wp := c.locate(key)
	s := c.shards[idx]
	s.mu.Lock()
	defer s.mu.Unlock()
	c.recordLocked(s, idx, key, wp, value, sig)
}

// FindMatch scans the entries of key in insertion order and returns the value
// of the first entry whose signature equals sig.
func (c *Cache[K, V]) FindMatch(key *K, sig Signature) (V, bool) {
	idx, wp := c.locate(key)
	s := c.shards[idx]
	s.mu.Lock()
	defer s.mu.Unlock()
	return findMatch(s.entries[wp], sig)
}

// LoadOrRecord returns the value recorded for (key, sig) if there is one.
// Otherwise it calls newFn, records the result and returns it.
// The lookup and the insertion happen atomically for key.
// loaded is true when an existing value was returned.
func (c *Cache[K, V]) LoadOrRecord(key *K, sig Signature, newFn func() V) (value V, loaded bool) {
	idx, wp := c.locate(key)
	s := c.shards[idx]
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries, ok := s.entries[wp]; ok {
		if v, found := findMatch(entries, sig); found {
			return v, true
		}
	}
	value = newFn()
	c.recordLocked(s, idx, key, wp, value, sig)
	return value, false
}

// Entries returns the number of entries recorded for key.
func (c *Cache[K, V]) Entries(key *K) int {
	idx, wp := c.locate(key)
	s := c.shards[idx]
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[wp])
}

// Len returns the number of keys that currently own a collection.
func (c *Cache[K, V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

func (c *Cache[K, V]) recordLocked(s *shard[K, V], idx int, key *K, wp weak.Pointer[K], value V, sig Signature) {
	if _, ok := s.entries[wp]; !ok {
		c.createLocked(s, idx, key, wp)
	}
	s.entries[wp] = append(s.entries[wp], Entry[V]{Value: value, Signature: sig})
	c.logger.Sugar().Debugf("recorded entry: shard: %d, entries: %d", idx, len(s.entries[wp]))
}

func (c *Cache[K, V]) createLocked(s *shard[K, V], idx int, key *K, wp weak.Pointer[K]) {
	s.entries[wp] = []Entry[V]{}
	runtime.AddCleanup(key, c.reclaim, reclaimTarget[K]{shardIdx: idx, key: wp})
	c.logger.Sugar().Debugf("created entry collection: shard: %d", idx)
}

// reclaim drops the collection of a key that is no longer reachable.
func (c *Cache[K, V]) reclaim(target reclaimTarget[K]) {
	s := c.shards[target.shardIdx]
	s.mu.Lock()
	n := len(s.entries[target.key])
	delete(s.entries, target.key)
	s.mu.Unlock()
	c.logger.Sugar().Debugf("reclaimed entry collection: shard: %d, entries: %d", target.shardIdx, n)
}

func findMatch[V any](entries []Entry[V], sig Signature) (V, bool) {
	for _, entry := range entries {
		if entry.Signature.Equal(sig) {
			return entry.Value, true
		}
	}
	var zero V
	return zero, false
}
