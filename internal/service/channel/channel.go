package channel

import (
	"context"
	"fmt"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/errs"
)

// Dispatcher 渠道分发器，对外伪装成Channel，作为统一入口
type Dispatcher struct {
	channels map[domain.Channel]Channel
}

func (d *Dispatcher) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	if err := req.Validate(); err != nil {
		return domain.DeliveryResult{}, err
	}
	ch, ok := d.channels[req.Channel]
	if !ok {
		return domain.DeliveryResult{}, fmt.Errorf("%w: %s", errs.ErrNoAvailableChannel, req.Channel)
	}
	return ch.Send(ctx, req)
}

// NewDispatcher 创建渠道分发器
func NewDispatcher(channels map[domain.Channel]Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
	}
}
