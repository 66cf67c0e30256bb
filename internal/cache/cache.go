// Package cache holds a bounded, time-expiring store for upstream response
// bodies. It shields providers from repeated identical calls; staleness past
// the TTL is never served, and callers tolerate whatever is younger.
package cache

import (
	"container/list"
	"sync"
	"time"
)

const (
	DefaultTTL        = 60 * time.Second
	DefaultMaxEntries = 2048
)

// Cache is a TTL + LRU response cache safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]*list.Element
	// order keeps the most recently used entry at the front.
	order *list.List
	now   func() time.Time
}

type entry struct {
	key      string
	body     []byte
	storedAt time.Time
}

// New creates a cache. Non-positive arguments fall back to the defaults.
func New(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
}

// Get returns the stored body for key, or misses when the key is absent or
// its age has reached the TTL. Expiry counts from insertion, not last access.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if c.now().Sub(e.storedAt) >= c.ttl {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, false
	}
	c.order.MoveToFront(el)
	return e.body, true
}

// Put stores body under key, restarting its TTL. When the cache is full the
// least-recently-used entry is evicted first.
func (c *Cache) Put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.body = body
		e.storedAt = c.now()
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&entry{key: key, body: body, storedAt: c.now()})
	c.entries[key] = el
	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry).key)
		}
	}
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
