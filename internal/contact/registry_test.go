package contact

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(idle time.Duration) (*Registry, *time.Time) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(func() *Controller {
		return NewController(DelaySender{}, WithScheduler(&fakeScheduler{}))
	}, idle, zerolog.Nop())
	r.now = func() time.Time { return now }
	return r, &now
}

func TestRegistryAcquire(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	c1, id1 := r.Acquire("")
	require.NotEmpty(t, id1)
	c1.UpdateField(FieldName, "Ada")

	again, sameID := r.Acquire(id1)
	assert.Same(t, c1, again)
	assert.Equal(t, id1, sameID)
	assert.Equal(t, "Ada", again.State().Fields.Name)

	c2, id2 := r.Acquire("forged-or-expired")
	assert.NotSame(t, c1, c2)
	assert.NotEqual(t, "forged-or-expired", id2)
	assert.Equal(t, 2, r.Len())
}

func TestRegistrySweepClosesIdleSessions(t *testing.T) {
	r, now := newTestRegistry(time.Minute)

	stale, _ := r.Acquire("")
	*now = now.Add(45 * time.Second)
	fresh, freshID := r.Acquire("")

	*now = now.Add(30 * time.Second)
	assert.Equal(t, 1, r.Sweep(*now))
	assert.Equal(t, 1, r.Len())

	_, err := stale.Submit(context.Background())
	assert.ErrorIs(t, err, ErrClosed)

	got, id := r.Acquire(freshID)
	assert.Same(t, fresh, got)
	assert.Equal(t, freshID, id)
}

func TestRegistryRunClosesAllOnCancel(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	c, _ := r.Acquire("")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Hour)
		close(done)
	}()
	cancel()
	<-done

	assert.Equal(t, 0, r.Len())
	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRegistryLookupNeverCreates(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	for _, id := range []string{"", "unknown"} {
		ctrl, ok := r.Lookup(id)
		assert.False(t, ok)
		assert.Nil(t, ctrl)
	}
	assert.Zero(t, r.Len())

	created, id := r.Acquire("")
	got, ok := r.Lookup(id)
	require.True(t, ok)
	assert.Same(t, created, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryCapEvictsLeastRecentlySeen(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(func() *Controller {
		return NewController(DelaySender{}, WithScheduler(&fakeScheduler{}))
	}, time.Hour, zerolog.Nop(), WithMaxSessions(2))
	r.now = func() time.Time { return now }

	first, firstID := r.Acquire("")
	now = now.Add(time.Second)
	_, secondID := r.Acquire("")
	now = now.Add(time.Second)
	_, ok := r.Lookup(firstID)
	require.True(t, ok)

	now = now.Add(time.Second)
	_, thirdID := r.Acquire("")
	assert.Equal(t, 2, r.Len())

	_, ok = r.Lookup(secondID)
	assert.False(t, ok, "least recently seen session is evicted")
	_, ok = r.Lookup(thirdID)
	assert.True(t, ok)

	got, ok := r.Lookup(firstID)
	require.True(t, ok)
	assert.Same(t, first, got)

	for i := 0; i < 5; i++ {
		r.Acquire("")
	}
	assert.Equal(t, 2, r.Len())
}
