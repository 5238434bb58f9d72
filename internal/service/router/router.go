package router

import (
	"context"

	"github.com/gotomicro/ego/core/elog"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
	"fitsync-notify/internal/service/windowpolicy"
)

// Dispatcher 智能分发器：先查会话窗口，窗口内走会话消息，窗口外走模版消息。
// 终态永远是一个结构化的 DeliveryResult，适配器与窗口检查抛出的任何错误都在
// 这一层被捕获转换，调用方拿不到异常。
type Dispatcher struct {
	policy   windowpolicy.Checker
	direct   provider.Provider
	template provider.Provider
	logger   *elog.Component
}

// NewDispatcher template 传入带兜底替换的模版适配器
func NewDispatcher(policy windowpolicy.Checker, direct, template provider.Provider) *Dispatcher {
	return &Dispatcher{
		policy:   policy,
		direct:   direct,
		template: template,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("router.Dispatcher")),
	}
}

// Dispatch 向 recipient 投递 body。
// fallback 指定窗口外使用的模版，零值时使用平台兜底模版。
func (d *Dispatcher) Dispatch(ctx context.Context, recipient, body string, fallback domain.Template) domain.DeliveryResult {
	open, err := d.policy.IsWindowOpen(ctx, recipient)
	if err != nil {
		// fail-closed：窗口检查失败按发送失败处理，不发起任何发送
		d.logger.Error("会话窗口检查失败",
			elog.String("recipient", recipient),
			elog.FieldErr(err),
		)
		return domain.DeliveryResult{
			Success: false,
			Message: err.Error(),
		}
	}

	if open {
		return d.sendDirect(ctx, recipient, body)
	}
	return d.SendTemplate(ctx, recipient, fallback)
}

func (d *Dispatcher) sendDirect(ctx context.Context, recipient, body string) domain.DeliveryResult {
	res, err := d.direct.Send(ctx, domain.MessageRequest{
		Channel: domain.ChannelWhatsApp,
		To:      recipient,
		Body:    body,
	})
	if err != nil {
		d.logger.Error("会话消息发送失败",
			elog.String("recipient", recipient),
			elog.FieldErr(err),
		)
		return domain.DeliveryResult{
			Success: false,
			Message: err.Error(),
		}
	}
	res.UsedTemplate = false
	return res
}

// SendTemplate 绕过窗口检查直接走模版路径，窗口外的主动触达也从这里进入
func (d *Dispatcher) SendTemplate(ctx context.Context, recipient string, tmpl domain.Template) domain.DeliveryResult {
	if tmpl.Name == "" {
		tmpl.Name = domain.DefaultTemplateName
	}
	if tmpl.Language == "" {
		tmpl.Language = domain.DefaultTemplateLanguage
	}

	res, err := d.template.Send(ctx, domain.MessageRequest{
		Channel:  domain.ChannelWhatsApp,
		To:       recipient,
		Template: tmpl,
	})
	if err != nil {
		d.logger.Error("模版消息发送失败",
			elog.String("recipient", recipient),
			elog.String("template", tmpl.Name),
			elog.FieldErr(err),
		)
		return domain.DeliveryResult{
			Success:      false,
			Message:      err.Error(),
			UsedTemplate: true,
		}
	}
	res.UsedTemplate = true
	return res
}
