package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"fitsync-notify/internal/repository/cache"
)

type eventDeduper struct {
	client redis.Cmdable
}

// FirstSeen SETNX 抢占事件键，抢到的调用方负责处理该事件
func (d *eventDeduper) FirstSeen(ctx context.Context, providerMessageID string) (bool, error) {
	return d.client.SetNX(ctx, cache.EventKey(providerMessageID), 1, cache.DefaultExpiredTime).Result()
}

func NewEventDeduper(client redis.Cmdable) cache.EventDeduper {
	return &eventDeduper{client: client}
}
