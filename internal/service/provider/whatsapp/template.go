package whatsapp

import (
	"context"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
	"fitsync-notify/internal/service/provider/whatsapp/client"
)

// templateProvider 模版消息发送，窗口状态之外也可触达
type templateProvider struct {
	client client.Client
}

func (p *templateProvider) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	language := req.Template.Language
	if language == "" {
		language = domain.DefaultTemplateLanguage
	}

	resp, err := p.client.SendTemplate(ctx, client.SendTemplateReq{
		To:           req.To,
		TemplateName: req.Template.Name,
		Language:     language,
		Components:   req.Template.Components,
	})
	if err != nil {
		return domain.DeliveryResult{}, err
	}
	return toResult(resp), nil
}

// NewTemplateProvider 模版消息适配器
func NewTemplateProvider(c client.Client) provider.Provider {
	return &templateProvider{client: c}
}
