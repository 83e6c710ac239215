package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAllow_PerKeyBurst(t *testing.T) {
	krl := New(0.001, 2, time.Minute)
	defer krl.Stop()

	assert.True(t, krl.Allow("a"))
	assert.True(t, krl.Allow("a"))
	assert.False(t, krl.Allow("a"))

	assert.True(t, krl.Allow("b"))
	assert.Equal(t, 2, krl.Len())
}

func TestNew_ClampsBurst(t *testing.T) {
	krl := New(0.001, 0, 0)
	defer krl.Stop()

	assert.True(t, krl.Allow("a"))
	assert.False(t, krl.Allow("a"))
}

func TestEvict_DropsIdleKeys(t *testing.T) {
	krl := New(1, 1, time.Hour)
	defer krl.Stop()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	krl.now = func() time.Time { return now }

	krl.Allow("old")
	now = now.Add(30 * time.Minute)
	krl.Allow("fresh")

	now = now.Add(45 * time.Minute)
	krl.evict()

	assert.Equal(t, 1, krl.Len())
	krl.mu.Lock()
	_, ok := krl.limiters["fresh"]
	krl.mu.Unlock()
	assert.True(t, ok)
}

func TestStop_Idempotent(t *testing.T) {
	krl := New(1, 1, time.Millisecond)
	krl.Stop()
	krl.Stop()
}
