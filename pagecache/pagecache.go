package pagecache

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

// PageCache is the server-side rendered-response cache behind the
// revalidation contract: entries expire after a fixed interval regardless of
// mutations, and mutations drop entries early through the invalidate calls.
// Keys are request URIs, so query variants of a page cache independently.
type PageCache struct {
	logger  hclog.Logger
	ttl     time.Duration
	mutex   sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	body        []byte
	contentType string
	tags        []string
	expiresAt   time.Time
}

func NewPageCache(logger hclog.Logger, ttl time.Duration) *PageCache {
	return &PageCache{
		logger:  logger.Named("page-cache"),
		ttl:     ttl,
		entries: map[string]*cacheEntry{},
	}
}

// Get returns the cached body and content type for the key. Expired entries
// are treated as absent and dropped lazily.
func (cache *PageCache) Get(key string) ([]byte, string, bool) {
	cache.mutex.RLock()
	entry, ok := cache.entries[key]
	cache.mutex.RUnlock()

	if !ok {
		return nil, "", false
	}

	if time.Now().After(entry.expiresAt) {
		cache.mutex.Lock()
		delete(cache.entries, key)
		cache.mutex.Unlock()
		return nil, "", false
	}

	return entry.body, entry.contentType, true
}

// Set stores a response body under the key with the cache's TTL.
func (cache *PageCache) Set(key string, tags []string, contentType string, body []byte) {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	cache.entries[key] = &cacheEntry{
		body:        body,
		contentType: contentType,
		tags:        tags,
		expiresAt:   time.Now().Add(cache.ttl),
	}
}

// InvalidatePath drops the entry for path and every query variant of it.
func (cache *PageCache) InvalidatePath(path string) {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	for key := range cache.entries {
		if key == path || strings.HasPrefix(key, path+"?") {
			delete(cache.entries, key)
		}
	}
	cache.logger.Debug("invalidated path", "path", path)
}

// InvalidateTag drops every entry carrying the tag.
func (cache *PageCache) InvalidateTag(tag string) {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	for key, entry := range cache.entries {
		for _, entryTag := range entry.tags {
			if entryTag == tag {
				delete(cache.entries, key)
				break
			}
		}
	}
	cache.logger.Debug("invalidated tag", "tag", tag)
}

// InvalidateAll drops everything.
func (cache *PageCache) InvalidateAll() {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	cache.entries = map[string]*cacheEntry{}
	cache.logger.Debug("invalidated all entries")
}

// Len reports the number of live entries, expired ones included until their
// next Get.
func (cache *PageCache) Len() int {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()
	return len(cache.entries)
}
