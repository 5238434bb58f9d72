package whatsapp

import (
	"context"
	"strings"

	"github.com/gotomicro/ego/core/elog"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
)

const (
	// maxFallbackAttempts 兜底替换的结构性上限，防止模版反复不存在时无限递归
	maxFallbackAttempts = 1

	// templateNotFoundCode 平台"模版不存在/未审核通过"的错误码
	templateNotFoundCode = "132001"
)

// fallbackResolver 包装模版适配器：
// 请求的模版被平台以"不存在/未审核"拒绝时，替换为兜底模版恰好重试一次，
// 第二次的结果原样返回。
type fallbackResolver struct {
	provider provider.Provider
	logger   *elog.Component
}

func (r *fallbackResolver) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	res, err := r.provider.Send(ctx, req)
	if err != nil {
		return res, err
	}

	if res.Success || req.FallbackAttempts >= maxFallbackAttempts || !isTemplateNotFound(res.Message) {
		return res, nil
	}

	r.logger.Warn("模版被拒，替换兜底模版重试",
		elog.String("template", req.Template.Name),
		elog.String("reason", res.Message),
	)

	res, err = r.provider.Send(ctx, req.AsFallback())
	if err != nil {
		return res, err
	}
	// 第二次失败原样返回，不再标记也不再重试
	if res.Success {
		res.UsedFallback = true
	}
	return res, nil
}

// isTemplateNotFound 识别"模版不存在"签名，只有这一类失败才允许兜底
func isTemplateNotFound(msg string) bool {
	if strings.Contains(msg, templateNotFoundCode) {
		return true
	}
	lower := strings.ToLower(msg)
	if !strings.Contains(lower, "template") {
		return false
	}
	return strings.Contains(lower, "not found") ||
		strings.Contains(lower, "does not exist") ||
		strings.Contains(lower, "not approved")
}

// NewFallbackResolver 为模版适配器加上兜底模版替换
func NewFallbackResolver(p provider.Provider) provider.Provider {
	return &fallbackResolver{
		provider: p,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("whatsapp.FallbackResolver")),
	}
}
