package tts

import (
	"context"
	"sync"
	"time"
)

// Catalog caches the provider voice list with an explicit expiry timestamp.
// It is constructor-injected wherever the voice list is needed; there is no
// process-wide singleton.
type Catalog struct {
	lister VoiceLister
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	voices    []Voice
	expiresAt time.Time
}

// NewCatalog wraps a VoiceLister with a TTL cache. A non-positive ttl
// disables caching.
func NewCatalog(lister VoiceLister, ttl time.Duration) *Catalog {
	return &Catalog{
		lister: lister,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Voices returns the cached list when fresh, refetching otherwise. A fetch
// failure with a stale cache propagates the error; the stale data is not
// served.
func (c *Catalog) Voices(ctx context.Context) ([]Voice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.voices != nil && c.now().Before(c.expiresAt) {
		return c.voices, nil
	}

	voices, err := c.lister.Voices(ctx)
	if err != nil {
		return nil, err
	}
	c.voices = voices
	c.expiresAt = c.now().Add(c.ttl)
	return voices, nil
}

// Invalidate drops the cached list.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.voices = nil
	c.expiresAt = time.Time{}
}
