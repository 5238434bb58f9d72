package provider

import (
	"context"

	"fitsync-notify/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks Provider

// Provider 单一物理渠道的发送适配器。
// 平台返回的结构化失败归一化为 DeliveryResult{Success:false}；
// 只有传输层失败（含超时）才以 error 形式返回。
type Provider interface {
	Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error)
}
