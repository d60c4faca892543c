package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueSequence_IncrAndExpireInOneTransaction(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	pipe := client.TxPipeline()
	incr, expire := queueSequence(context.Background(), pipe, "20251019", 48*time.Hour)

	require.Equal(t, 2, pipe.Len())
	assert.Equal(t, []interface{}{"incr", "order_seq:20251019"}, incr.Args())
	assert.Equal(t, []interface{}{"expire", "order_seq:20251019", int64(48 * 3600)}, expire.Args())
	pipe.Discard()
}

func TestRedisSequenceCounter_ExecFailureConsumesNothing(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()

	value, err := NewRedisSequenceCounter(client).Next(context.Background(), "20251019")
	assert.Error(t, err)
	assert.Zero(t, value)
}

func TestMemorySequenceCounter_PerDay(t *testing.T) {
	counter := NewMemorySequenceCounter()
	ctx := context.Background()

	first, err := counter.Next(ctx, "20251019")
	require.NoError(t, err)
	second, err := counter.Next(ctx, "20251019")
	require.NoError(t, err)
	other, err := counter.Next(ctx, "20251020")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(1), other)
}
