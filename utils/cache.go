package utils

import (
	"sync"
	"time"

	"pulselink/config"
)

// Cache is a small in-process TTL store. It fills the role a dedicated
// cache service would in a deployed system: search and booking sessions,
// auth token hashes and pending OTPs all live here for the lifetime of
// the process and nowhere else.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// NewCache creates a cache and starts its expiry janitor.
func NewCache() *Cache {
	c := &Cache{entries: make(map[string]cacheEntry)}
	go c.janitor()
	return c
}

// Set stores a value under key with the given TTL. A non-positive TTL
// means the entry never expires.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := cacheEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = entry
}

// Get returns the value for key, or false if absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Del removes the entry for key, if any.
func (c *Cache) Del(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.entries {
			if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}

var (
	bookingCache *Cache
	searchCache  *Cache
	authCache    *Cache
	otpCache     *Cache
	cacheOnce    sync.Once
)

func initCaches() {
	cacheOnce.Do(func() {
		bookingCache = NewCache()
		searchCache = NewCache()
		authCache = NewCache()
		otpCache = NewCache()
	})
}

// GetBookingCacheClient returns the dedicated booking session cache.
func GetBookingCacheClient() *Cache {
	initCaches()
	return bookingCache
}

// GetSearchCacheClient returns the dedicated search session cache.
func GetSearchCacheClient() *Cache {
	initCaches()
	return searchCache
}

// GetAuthCacheClient returns the dedicated auth token cache.
func GetAuthCacheClient() *Cache {
	initCaches()
	return authCache
}

// GetOTPCacheClient returns the dedicated OTP cache.
func GetOTPCacheClient() *Cache {
	initCaches()
	return otpCache
}

// SessionCacheTTL is the time-to-live applied to search and booking
// sessions, configurable via SESSION_TTL_MIN.
func SessionCacheTTL() time.Duration {
	if min := config.AppConfig.SessionTTLMinutes; min > 0 {
		return time.Duration(min) * time.Minute
	}
	return SessionTTL
}
