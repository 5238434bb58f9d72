package cache

import (
	"context"
	"fmt"
	"time"
)

// DefaultExpiredTime 去重键的保留时间，对齐平台的回调重投窗口
const DefaultExpiredTime = 7 * 24 * time.Hour

// EventDeduper 回调事件去重。
// FirstSeen 返回 true 表示该事件第一次出现，应当被处理。
type EventDeduper interface {
	FirstSeen(ctx context.Context, providerMessageID string) (bool, error)
}

func EventKey(providerMessageID string) string {
	return fmt.Sprintf("fitsync:webhook:event:%s", providerMessageID)
}
