package feed

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisFeed fans change signals out over redis pub/sub, so every instance
// sees writes made by any other instance.
type RedisFeed struct {
	client *redis.Client
}

func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{client: client}
}

func (r *RedisFeed) Watch(ctx context.Context, collection string) (<-chan Signal, error) {
	ps := r.client.Subscribe(ctx, ChannelName(collection))
	// wait for the subscription confirmation so no publish is missed after return
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", ChannelName(collection), err)
	}

	ch := make(chan Signal, 1)
	go func() {
		defer close(ch)
		defer ps.Close()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				notify(ch)
			}
		}
	}()
	return ch, nil
}

func (r *RedisFeed) Publish(ctx context.Context, collection string) error {
	if err := r.client.Publish(ctx, ChannelName(collection), "changed").Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ChannelName(collection), err)
	}
	return nil
}
