package visitors

import (
	"context"
	"strings"
	"sync"
	"time"
)

var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/healthz", "/contact/", "/work-content", "/education-content"}

// ShouldTrack reports whether a request for path is recorded. Asset, admin,
// fragment and form-plumbing requests are skipped, as is anyone sending DNT: 1.
func ShouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Tracker records visits off the request path.
type Tracker struct {
	store   *Store
	now     func() time.Time
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewTracker wraps store.
func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store, now: time.Now, timeout: 5 * time.Second}
}

// Track records a visit in the background.
func (t *Tracker) Track(ip, userAgent, path string) {
	at := t.now()
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		if err := t.store.Record(ctx, ip, userAgent, path, at); err != nil {
			t.store.log.Error().Err(err).Str("path", path).Msg("error recording visitor")
		}
	}()
}

// Wait blocks until every pending write has finished.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// RunCleanup purges rows older than retention now and then daily until ctx
// is done.
func (t *Tracker) RunCleanup(ctx context.Context, retention time.Duration) {
	purge := func() {
		if _, err := t.store.Cleanup(ctx, t.now().Add(-retention)); err != nil {
			t.store.log.Error().Err(err).Msg("error cleaning up old visitor data")
		}
	}
	purge()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}
