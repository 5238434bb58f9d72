package channel

import (
	"context"

	"fitsync-notify/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/channel.mock.go -package=channelmocks Channel
type Channel interface {
	// Send 发送消息
	Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error)
}
