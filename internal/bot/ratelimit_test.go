package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimitsWithinWindow(t *testing.T) {
	now := time.Now()
	limiter := newSlidingWindow(3, 10*time.Second)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(1), "event %d should pass", i)
	}
	assert.False(t, limiter.Allow(1), "fourth event inside the window must be rejected")
}

func TestSlidingWindowRecoversAfterWindow(t *testing.T) {
	now := time.Now()
	limiter := newSlidingWindow(2, 10*time.Second)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow(1))
	assert.True(t, limiter.Allow(1))
	assert.False(t, limiter.Allow(1))

	now = now.Add(11 * time.Second)
	assert.True(t, limiter.Allow(1), "events outside the window no longer count")
}

func TestSlidingWindowIsPerIdentity(t *testing.T) {
	now := time.Now()
	limiter := newSlidingWindow(1, 10*time.Second)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow(1))
	assert.False(t, limiter.Allow(1))
	assert.True(t, limiter.Allow(2), "a saturated identity must not affect others")
}

func TestSlidingWindowSweepsStaleIdentities(t *testing.T) {
	now := time.Now()
	limiter := newSlidingWindow(1, time.Second)
	limiter.now = func() time.Time { return now }

	for id := int64(0); id < maxTrackedIdentities; id++ {
		limiter.Allow(id)
	}
	assert.Len(t, limiter.events, maxTrackedIdentities)

	now = now.Add(2 * time.Second)
	assert.True(t, limiter.Allow(maxTrackedIdentities))
	assert.Len(t, limiter.events, 1, "stale identities are swept when the map is full")
}
