package warden

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func buildURL(baseURL, path string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	p := strings.TrimSpace(path)
	if p == "" {
		return base
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}

// hashToken keeps raw bearer tokens out of the cache map and out of any
// heap dump taken from a running process.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func isAuthDenied(err error) bool {
	return errors.Is(err, usecase.ErrUnauthorized)
}

type cachedPrincipal struct {
	principal profile.Principal
	expiresAt time.Time
}

type principalCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]cachedPrincipal
}

func newPrincipalCache(ttl time.Duration, maxEntries int) *principalCache {
	return &principalCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]cachedPrincipal),
	}
}

func (c *principalCache) Get(key string) (profile.Principal, bool) {
	if c.ttl <= 0 {
		return profile.Principal{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return profile.Principal{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return profile.Principal{}, false
	}
	return entry.principal, true
}

func (c *principalCache) Set(key string, principal profile.Principal) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = cachedPrincipal{principal: principal, expiresAt: time.Now().Add(c.ttl)}
}

// evictLocked drops expired entries first and falls back to clearing the map
// when everything is still live. The cache is small and short-lived, so a
// full reset is cheaper than tracking recency.
func (c *principalCache) evictLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[string]cachedPrincipal)
	}
}
