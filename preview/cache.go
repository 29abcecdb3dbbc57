package preview

import (
	"image"
	"sync"

	"github.com/davidisaaclee/pickle"
)

// thumbKey identifies one rendering of one sprite version.
type thumbKey struct {
	version       string
	width, height int
}

type cacheEntry struct {
	img   *image.NRGBA
	atime int64
}

// Cache memoises thumbnails by sprite version token, so a timeline that
// redraws every frame only rescales the frames that changed.
//
// When the cache grows past its soft limit the least recently used quarter
// is evicted. Cache is safe for concurrent use and must not be copied.
type Cache struct {
	mu        sync.Mutex
	entries   map[thumbKey]*cacheEntry
	softLimit int
	tick      int64

	hits, misses uint64
}

// NewCache creates a cache holding about softLimit thumbnails.
// A softLimit of 0 means unlimited.
func NewCache(softLimit int) *Cache {
	return &Cache{
		entries:   make(map[thumbKey]*cacheEntry),
		softLimit: softLimit,
	}
}

// Thumbnail returns the width x height thumbnail of s, rendering it only if
// this version of s has not been rendered at that size before. The returned
// image is shared; callers must not modify it.
func (c *Cache) Thumbnail(s *pickle.Sprite, width, height int) *image.NRGBA {
	key := thumbKey{version: s.Version(), width: width, height: height}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		c.hits++
		return e.img
	}

	c.misses++
	img := Thumbnail(s, width, height)
	c.entries[key] = &cacheEntry{img: img, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return img
}

// Len returns the number of cached thumbnails.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// Clear drops every cached thumbnail.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[thumbKey]*cacheEntry)
	c.tick = 0
}

// evictOldest shrinks the cache to three quarters of the soft limit,
// dropping the least recently used entries first. Caller must hold c.mu.
func (c *Cache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   thumbKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}

	// Partial selection sort: only the oldest toEvict entries need ordering.
	for i := 0; i < toEvict; i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(c.entries, all[i].key)
	}
}
