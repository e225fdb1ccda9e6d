package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketAllow(t *testing.T) {
	tb := NewTokenBucket(1, 2)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestTokenBucketAllowN(t *testing.T) {
	tb := NewTokenBucket(1, 5)

	assert.True(t, tb.AllowN(5))
	assert.False(t, tb.AllowN(1))
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, tb.Allow())
}

func TestTokenBucketWait(t *testing.T) {
	tb := NewTokenBucket(100, 1)
	assert.True(t, tb.Allow())

	start := time.Now()
	err := tb.Wait(context.Background())
	assert.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestTokenBucketWaitCanceled(t *testing.T) {
	tb := NewTokenBucket(0.001, 1)
	assert.True(t, tb.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := tb.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
