// Package cache holds rendered public responses in memory and drops them when
// a revalidation key they depend on is marked stale.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"newsdesk/internal/revalidate"
)

// Config controls the size of the page cache.
type Config struct {
	MaxCostBytes int64         // Upper bound on the summed size of stored bodies
	NumCounters  int64         // Admission counters, roughly 10x the expected entry count
	TTL          time.Duration // Hard expiry; 0 keeps entries until evicted or invalidated
}

// DefaultConfig returns a cache sized for a few thousand rendered pages.
func DefaultConfig() Config {
	return Config{
		MaxCostBytes: 64 << 20,
		NumCounters:  100_000,
		TTL:          10 * time.Minute,
	}
}

// Page is a cached response body.
type Page struct {
	Body        []byte
	ContentType string
	ETag        string
	StoredAt    time.Time
}

type entry struct {
	page   Page
	ticket Ticket
}

// Ticket records the generation of each dependency at the moment a read began.
// A page stored with a ticket that predates a MarkStale is never served.
type Ticket struct {
	epoch uint64
	deps  map[revalidate.Key]uint64
}

// PageCache is a ristretto-backed response cache that implements
// revalidate.Invalidator through per-key generation counters.
type PageCache struct {
	store *ristretto.Cache[string, *entry]
	ttl   time.Duration

	// generations holds one counter per key marked stale since the last Clear,
	// so it grows with the number of distinct slugs written. Clear resets it
	// and bumps epoch, which outdates every ticket taken before.
	mu          sync.RWMutex
	epoch       uint64
	generations map[revalidate.Key]uint64
}

// New builds a PageCache.
func New(cfg Config) (*PageCache, error) {
	if cfg.MaxCostBytes <= 0 || cfg.NumCounters <= 0 {
		return nil, fmt.Errorf("cache: MaxCostBytes and NumCounters must be positive")
	}
	store, err := ristretto.NewCache(&ristretto.Config[string, *entry]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCostBytes,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: NewCache: %w", err)
	}
	return &PageCache{
		store:       store,
		ttl:         cfg.TTL,
		generations: make(map[revalidate.Key]uint64),
	}, nil
}

// Begin snapshots the generations of deps. Call it before reading from storage.
func (c *PageCache) Begin(deps ...revalidate.Key) Ticket {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t := Ticket{epoch: c.epoch, deps: make(map[revalidate.Key]uint64, len(deps))}
	for _, k := range deps {
		t.deps[k] = c.generations[k]
	}
	return t
}

// Get returns the page stored under reqKey if none of its dependencies has
// been marked stale since it was rendered.
func (c *PageCache) Get(reqKey string) (Page, bool) {
	e, ok := c.store.Get(reqKey)
	if !ok {
		cacheLookups.WithLabelValues("miss").Inc()
		return Page{}, false
	}
	if !c.fresh(e.ticket) {
		c.store.Del(reqKey)
		cacheLookups.WithLabelValues("stale").Inc()
		return Page{}, false
	}
	cacheLookups.WithLabelValues("hit").Inc()
	return e.page, true
}

// Set stores body under reqKey. It reports false when the ticket is already
// outdated or the cache declined the entry.
func (c *PageCache) Set(reqKey string, body []byte, contentType string, t Ticket) (Page, bool) {
	page := Page{
		Body:        body,
		ContentType: contentType,
		ETag:        ETag(body),
		StoredAt:    time.Now(),
	}
	if !c.fresh(t) {
		return page, false
	}
	e := &entry{page: page, ticket: t}
	var ok bool
	if c.ttl > 0 {
		ok = c.store.SetWithTTL(reqKey, e, int64(len(body)), c.ttl)
	} else {
		ok = c.store.Set(reqKey, e, int64(len(body)))
	}
	// Make the entry visible to the next Get.
	c.store.Wait()
	return page, ok
}

// MarkStale implements revalidate.Invalidator.
func (c *PageCache) MarkStale(_ context.Context, keys ...revalidate.Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.generations[k]++
	}
	invalidatedKeys.Add(float64(len(keys)))
	return nil
}

// Clear drops every stored page and forgets the generation counters.
// Renders that began before Clear are not stored.
func (c *PageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.generations = make(map[revalidate.Key]uint64)
	c.store.Clear()
}

// Generations reports how many keys currently carry a generation counter.
func (c *PageCache) Generations() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.generations)
}

// Close releases the cache's background goroutines.
func (c *PageCache) Close() {
	c.store.Close()
}

// HitRatio reports ristretto's hit ratio since start.
func (c *PageCache) HitRatio() float64 {
	return c.store.Metrics.Ratio()
}

func (c *PageCache) fresh(t Ticket) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if t.epoch != c.epoch {
		return false
	}
	for k, gen := range t.deps {
		if c.generations[k] != gen {
			return false
		}
	}
	return true
}

// ETag returns a strong validator for body.
func ETag(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:8])
}
