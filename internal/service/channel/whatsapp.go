package channel

import (
	"context"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/router"
)

// whatsappChannel 把渠道入口接到智能分发器上。
// 自由文本请求交给路由器做窗口判定；显式的模版请求绕过窗口检查直达模版路径。
type whatsappChannel struct {
	router *router.Dispatcher
}

func (c *whatsappChannel) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	// 只带模版的请求是明确的模版发送，不需要窗口判定；
	// 带 Body 的请求交给路由器，Template 仅作为窗口外的兜底偏好
	if req.Body == "" {
		return c.router.SendTemplate(ctx, req.To, req.Template), nil
	}
	return c.router.Dispatch(ctx, req.To, req.Body, req.Template), nil
}

// NewWhatsAppChannel 会话平台渠道
func NewWhatsAppChannel(r *router.Dispatcher) Channel {
	return &whatsappChannel{router: r}
}
