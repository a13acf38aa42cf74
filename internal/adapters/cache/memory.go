package cache

import (
	"sync"
	"time"

	"tidewriter/internal/domain"
)

// LatestKey is the cache key for the most recent chapter. It gets its
// own slot because "latest" changes identity once a day while dated
// chapters are immutable.
const LatestKey = "latest"

// MemoryCache is an in-memory chapter cache with TTL support.
type MemoryCache struct {
	chapters sync.Map
	ttl      time.Duration
}

// cacheEntry holds a cached chapter with expiration metadata.
type cacheEntry struct {
	chapter   *domain.ChapterRecord
	expiresAt time.Time
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache with the specified TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	cache := &MemoryCache{ttl: ttl}
	go cache.cleanup()
	return cache
}

// NormalizedKey returns the cache key for a chapter date. An empty date
// addresses the latest-chapter slot.
func NormalizedKey(isoDate string) string {
	if isoDate == "" {
		return LatestKey
	}
	return "/chapter/" + isoDate
}

// Get retrieves the chapter for a date ("" for latest) from the cache.
// Returns the chapter and true if found and not expired, otherwise nil and false.
func (c *MemoryCache) Get(isoDate string) (*domain.ChapterRecord, bool) {
	key := NormalizedKey(isoDate)
	value, ok := c.chapters.Load(key)
	if !ok {
		return nil, false
	}

	entry := value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.chapters.Delete(key)
		return nil, false
	}

	return entry.chapter, true
}

// Set stores a chapter under a date ("" for latest) with the configured TTL.
func (c *MemoryCache) Set(isoDate string, chapter *domain.ChapterRecord) {
	now := time.Now()
	c.chapters.Store(NormalizedKey(isoDate), &cacheEntry{
		chapter:   chapter,
		expiresAt: now.Add(c.ttl),
		fetchedAt: now,
	})
}

// cleanup periodically removes expired entries from the cache.
func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		now := time.Now()
		c.chapters.Range(func(key, value interface{}) bool {
			entry := value.(*cacheEntry)
			if now.After(entry.expiresAt) {
				c.chapters.Delete(key)
			}
			return true
		})
	}
}
