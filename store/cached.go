package store

import (
	"sync"
	"sync/atomic"
)

// DefaultCacheCapacity is the default number of records a Cached store
// keeps in memory. Glyph sets are small (letters, digits, punctuation),
// so the default comfortably holds a full alphabet several times over.
const DefaultCacheCapacity = 256

// Cached is a read-through LRU front for another GlyphStore. Get fills
// the cache on miss; Insert writes through and refreshes the cached
// entry. It is safe for concurrent use.
type Cached struct {
	backing  GlyphStore
	capacity int

	mu      sync.Mutex
	entries map[string]*cacheEntry
	head    *cacheEntry // most recently used
	tail    *cacheEntry // least recently used

	// Statistics (atomic so Stats never takes the lock).
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheEntry is a node of the LRU list.
type cacheEntry struct {
	name string
	rec  Record
	prev *cacheEntry
	next *cacheEntry
}

// CacheStats is a snapshot of cache effectiveness counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewCached wraps backing with an LRU cache of the given capacity.
// If capacity <= 0, DefaultCacheCapacity is used.
func NewCached(backing GlyphStore, capacity int) *Cached {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cached{
		backing:  backing,
		capacity: capacity,
		entries:  make(map[string]*cacheEntry, capacity),
	}
}

// Exists reports whether name is cached or present in the backing store.
func (c *Cached) Exists(name string) bool {
	c.mu.Lock()
	_, ok := c.entries[name]
	c.mu.Unlock()
	if ok {
		return true
	}
	return c.backing.Exists(name)
}

// Get returns the record for name, consulting the cache first.
func (c *Cached) Get(name string) (Record, error) {
	c.mu.Lock()
	if e, ok := c.entries[name]; ok {
		c.moveToFront(e)
		rec := e.rec
		c.mu.Unlock()
		c.hits.Add(1)
		return rec, nil
	}
	c.mu.Unlock()
	c.misses.Add(1)

	rec, err := c.backing.Get(name)
	if err != nil {
		return Record{}, err
	}
	c.put(name, rec)
	return rec, nil
}

// Insert writes through to the backing store and refreshes the cache.
func (c *Cached) Insert(rec Record) error {
	if err := c.backing.Insert(rec); err != nil {
		return err
	}
	c.put(rec.Name, rec)
	return nil
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cached) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// put stores rec under name, evicting the least recently used entry
// when the cache is full.
func (c *Cached) put(name string, rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[name]; ok {
		e.rec = rec
		c.moveToFront(e)
		return
	}
	if len(c.entries) >= c.capacity && c.tail != nil {
		evicted := c.tail
		c.unlink(evicted)
		delete(c.entries, evicted.name)
		c.evictions.Add(1)
	}
	e := &cacheEntry{name: name, rec: rec}
	c.entries[name] = e
	c.pushFront(e)
}

// moveToFront marks e as most recently used. Caller holds mu.
func (c *Cached) moveToFront(e *cacheEntry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

// pushFront links e at the head of the LRU list. Caller holds mu.
func (c *Cached) pushFront(e *cacheEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// unlink removes e from the LRU list. Caller holds mu.
func (c *Cached) unlink(e *cacheEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else if c.head == e {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else if c.tail == e {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
