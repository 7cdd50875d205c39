package feed

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubCoalescesBurst(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := h.Watch(ctx, "locations")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Publish(ctx, "locations"))
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a signal")
	}
	select {
	case <-ch:
		t.Fatal("burst should collapse into one pending signal")
	default:
	}
}

func TestHubScopesByCollection(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := h.Watch(ctx, "channels")
	require.NoError(t, err)
	require.NoError(t, h.Publish(ctx, "locations"))

	select {
	case <-ch:
		t.Fatal("channels watcher must not see locations changes")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubClosesOnCancel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := h.Watch(ctx, "locations")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Watchers("locations"))

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel should close after cancel")
	}
	assert.Equal(t, 0, h.Watchers("locations"))
	// publishing after the watcher left is harmless
	assert.NoError(t, h.Publish(context.Background(), "locations"))
}

func TestNewBackends(t *testing.T) {
	_, _, err := New(BackendMongo, nil, nil)
	assert.Error(t, err)

	_, _, err = New(BackendRedis, nil, nil)
	assert.Error(t, err)

	_, _, err = New("kafka", nil, nil)
	assert.Error(t, err)

	src, pub, err := New(BackendLocal, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &Hub{}, src)
	assert.Same(t, src, pub)

	assert.Equal(t, "locations_changes", ChannelName("locations"))
	assert.NoError(t, Noop{}.Publish(context.Background(), "x"))
}

// TestRedisFeedRoundTrip needs a reachable redis; it is skipped without REDIS_ADDR.
func TestRedisFeedRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r := NewRedisFeed(client)
	ch, err := r.Watch(ctx, "feed_test")
	require.NoError(t, err)
	require.NoError(t, r.Publish(ctx, "feed_test"))

	select {
	case <-ch:
	case <-ctx.Done():
		t.Fatal("no signal from redis")
	}
}
