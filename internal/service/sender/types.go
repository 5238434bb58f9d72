package sender

import (
	"context"

	"fitsync-notify/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/sender.mock.go -package=sendermocks NotificationSender

// NotificationSender 统一发送入口：分发到渠道并把结果写入消息日志。
// 永远返回结构化结果，不向上层抛错。
type NotificationSender interface {
	Send(ctx context.Context, req domain.MessageRequest) domain.DeliveryResult
}
