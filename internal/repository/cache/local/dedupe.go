package local

import (
	"context"
	"time"

	ca "github.com/patrickmn/go-cache"

	"fitsync-notify/internal/repository/cache"
)

const cleanupInterval = 10 * time.Minute

// Deduper 本地缓存挡在权威去重之前，省掉已见事件的 redis 往返
type Deduper struct {
	next       cache.EventDeduper
	localCache *ca.Cache
}

func (d *Deduper) FirstSeen(ctx context.Context, providerMessageID string) (bool, error) {
	key := cache.EventKey(providerMessageID)
	if _, ok := d.localCache.Get(key); ok {
		return false, nil
	}

	first, err := d.next.FirstSeen(ctx, providerMessageID)
	if err != nil {
		return false, err
	}
	d.localCache.Set(key, struct{}{}, cache.DefaultExpiredTime)
	return first, nil
}

func NewDeduper(next cache.EventDeduper) *Deduper {
	return &Deduper{
		next:       next,
		localCache: ca.New(cache.DefaultExpiredTime, cleanupInterval),
	}
}
