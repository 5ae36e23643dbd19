package cache

import (
	"sync"
	"time"

	"github.com/drivespec/backend/internal/domain"
)

// entry is a cached product record plus its capture instant
type entry struct {
	record   domain.ProductRecord
	storedAt time.Time
}

// Memory is a thread-safe in-memory product cache with TTL support.
// Staleness is computed lazily on read; stale entries are not evicted,
// they stay visible to Stats until overwritten or cleared.
type Memory struct {
	ttl   time.Duration
	now   func() time.Time
	mutex sync.RWMutex
	data  map[string]entry
}

// NewMemory creates a new in-memory cache with the given TTL
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]entry),
	}
}

// Get retrieves a record from the cache. ok reports whether the key is
// present; valid reports whether the entry's age is still below the TTL.
// Callers must treat present-but-invalid entries as misses.
func (c *Memory) Get(key string) (domain.ProductRecord, bool, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, ok := c.data[key]
	if !ok {
		return domain.ProductRecord{}, false, false
	}

	record := e.record
	record.Specifications = copySpecs(record.Specifications)
	return record, true, c.now().Sub(e.storedAt) < c.ttl
}

// Put stores a record, unconditionally overwriting any prior entry for the
// key with a freshly timestamped one.
func (c *Memory) Put(key string, record domain.ProductRecord) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	record.Specifications = copySpecs(record.Specifications)
	c.data[key] = entry{
		record:   record,
		storedAt: c.now(),
	}
}

// copySpecs deep-copies the nested spec mapping. Entries never share map
// storage with callers, on either the Put or the Get side.
func copySpecs(specs map[string]map[string]string) map[string]map[string]string {
	if specs == nil {
		return nil
	}
	out := make(map[string]map[string]string, len(specs))
	for category, entries := range specs {
		m := make(map[string]string, len(entries))
		for name, value := range entries {
			m[name] = value
		}
		out[category] = m
	}
	return out
}

// Clear removes all entries from the cache
func (c *Memory) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]entry)
}

// Stats returns a read-only snapshot of the cache contents
func (c *Memory) Stats() domain.CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := domain.CacheStats{
		TotalEntries: len(c.data),
		Entries:      make([]domain.CacheEntryInfo, 0, len(c.data)),
	}

	now := c.now()
	for key, e := range c.data {
		age := now.Sub(e.storedAt)
		stats.Entries = append(stats.Entries, domain.CacheEntryInfo{
			Key:        key,
			AgeSeconds: int(age.Seconds()),
			Valid:      age < c.ttl,
		})
	}

	return stats
}

// Len returns the current number of entries, stale ones included
func (c *Memory) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
