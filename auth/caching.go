package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/metriport/ehr-sync/sources"
)

var (
	DefaultCacheSize            = 10000           // Cache up to 10000 tokens
	DefaultCacheEntryExpiration = 5 * time.Minute // Cache tokens for 5 minutes
)

type cacheEntry struct {
	auth   *Auth
	expiry time.Time
}

func (c cacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

// CachingAuthenticator memoizes successful authentications so hot dashboard
// sessions do not hit the token store on every request. Failures are never
// cached.
type CachingAuthenticator struct {
	delegate   Authenticator
	expiration time.Duration
	lru        *simplelru.LRU
	mu         sync.Mutex
}

var _ Authenticator = &CachingAuthenticator{}

func NewCachingAuthenticator(size int, expiration time.Duration, delegate Authenticator) (*CachingAuthenticator, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingAuthenticator{
		delegate:   delegate,
		expiration: expiration,
		lru:        lru,
	}, nil
}

func NewDefaultCachingAuthenticator(delegate Authenticator) (*CachingAuthenticator, error) {
	return NewCachingAuthenticator(DefaultCacheSize, DefaultCacheEntryExpiration, delegate)
}

func (c *CachingAuthenticator) Authenticate(ctx context.Context, token string, expected sources.Source) (*Auth, error) {
	key := cacheKey(token, expected)
	if auth := c.getCachedAuth(key); auth != nil {
		return auth, nil
	}

	auth, err := c.delegate.Authenticate(ctx, token, expected)
	if err != nil {
		return nil, err
	}

	c.setCacheEntry(key, cacheEntry{
		auth:   auth,
		expiry: time.Now().Add(c.expiration),
	})
	return auth, nil
}

func (c *CachingAuthenticator) getCachedAuth(key string) *Auth {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(key); ok {
		entry := e.(cacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(key)
			return nil
		}
		return entry.auth
	}

	return nil
}

func (c *CachingAuthenticator) setCacheEntry(key string, entry cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(key, entry)
}

func cacheKey(token string, expected sources.Source) string {
	return fmt.Sprintf("%s|%s", token, expected)
}
