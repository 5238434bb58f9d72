package sms

import (
	"context"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
	"fitsync-notify/internal/service/provider/sms/client"
)

// smsProvider 短信适配器，发信号码来自配置
type smsProvider struct {
	from   string
	client client.Client
}

func (p *smsProvider) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	resp, err := p.client.Send(ctx, client.SendReq{
		To:   req.To,
		From: p.from,
		Body: req.Body,
	})
	if err != nil {
		return domain.DeliveryResult{}, err
	}

	if !resp.Success {
		return domain.DeliveryResult{
			Success: false,
			Message: resp.ErrorMessage,
			Raw:     resp.Raw,
		}, nil
	}

	return domain.DeliveryResult{
		Success:           true,
		Message:           "发送成功",
		ProviderMessageID: resp.SID,
		Raw:               resp.Raw,
	}, nil
}

// NewSMSProvider 短信适配器
func NewSMSProvider(from string, c client.Client) provider.Provider {
	return &smsProvider{from: from, client: c}
}
