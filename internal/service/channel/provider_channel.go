package channel

import (
	"context"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
)

// providerChannel 单适配器直连渠道，短信和浏览器推送走这里
type providerChannel struct {
	provider provider.Provider
}

func (c *providerChannel) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	return c.provider.Send(ctx, req)
}

// NewProviderChannel 把单个适配器包装成渠道
func NewProviderChannel(p provider.Provider) Channel {
	return &providerChannel{provider: p}
}
