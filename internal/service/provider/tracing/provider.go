package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
)

// Provider 为适配器实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
	name     string
}

func (p *Provider) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("provider.name", p.name),
			attribute.String("message.channel", req.Channel.String()),
			attribute.String("message.to", req.To),
			attribute.String("message.template", req.Template.Name),
		))
	defer span.End()

	result, err := p.provider.Send(ctx, req)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Bool("message.success", result.Success),
			attribute.Bool("message.usedFallback", result.UsedFallback),
			attribute.String("message.providerMessageId", result.ProviderMessageID),
		)
	}

	return result, err
}

// NewProvider 创建一个新的带有链路追踪的适配器
// name 应该传入类似于 whatsapp-direct, sms 这种名字
func NewProvider(p provider.Provider, name string) *Provider {
	return &Provider{
		provider: p,
		name:     name,
		tracer:   otel.Tracer("fitsync-notify/provider"),
	}
}
