package whatsapp

import (
	"context"
	"fmt"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
	"fitsync-notify/internal/service/provider/whatsapp/client"
)

// directProvider 会话窗口内的自由文本发送。
// 窗口是否开放由路由器判定，适配器本身不做校验。
type directProvider struct {
	client client.Client
}

func (p *directProvider) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	resp, err := p.client.SendText(ctx, client.SendTextReq{
		To:      req.To,
		Message: req.Body,
	})
	if err != nil {
		return domain.DeliveryResult{}, err
	}
	return toResult(resp), nil
}

// NewDirectProvider 会话消息适配器
func NewDirectProvider(c client.Client) provider.Provider {
	return &directProvider{client: c}
}

func toResult(resp client.SendResp) domain.DeliveryResult {
	if resp.Success {
		return domain.DeliveryResult{
			Success:           true,
			Message:           "发送成功",
			ProviderMessageID: resp.MessageID,
			Raw:               resp.Raw,
		}
	}
	msg := resp.ErrorMessage
	if resp.ErrorCode != 0 {
		msg = fmt.Sprintf("code=%d: %s", resp.ErrorCode, resp.ErrorMessage)
	}
	return domain.DeliveryResult{
		Success: false,
		Message: msg,
		Raw:     resp.Raw,
	}
}
