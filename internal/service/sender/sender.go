package sender

import (
	"context"

	"github.com/gotomicro/ego/core/elog"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/repository"
	"fitsync-notify/internal/service/channel"
)

// sender 通知发送器实现
type sender struct {
	repo    repository.MessageRepository
	channel channel.Channel

	logger *elog.Component
}

func (s *sender) Send(ctx context.Context, req domain.MessageRequest) domain.DeliveryResult {
	res, err := s.channel.Send(ctx, req)
	if err != nil {
		s.logger.Error("发送失败",
			elog.String("channel", req.Channel.String()),
			elog.FieldErr(err),
		)
		res = domain.DeliveryResult{
			Success: false,
			Message: err.Error(),
		}
	}

	// 留痕失败不影响发送结果
	if _, err := s.repo.LogOutbound(ctx, s.toRecord(req, res)); err != nil {
		s.logger.Error("出站留痕写入失败",
			elog.String("recipient", req.To),
			elog.FieldErr(err),
		)
	}

	return res
}

func (s *sender) toRecord(req domain.MessageRequest, res domain.DeliveryResult) domain.OutboundRecord {
	content := req.Body
	if content == "" && req.Push != nil {
		content = req.Push.Body
	}
	templateName := req.Template.Name
	if res.UsedFallback {
		templateName = domain.DefaultTemplateName
	}
	return domain.OutboundRecord{
		Recipient:         req.To,
		Channel:           req.Channel,
		Content:           content,
		TemplateName:      templateName,
		ProviderMessageID: res.ProviderMessageID,
		Success:           res.Success,
		UsedTemplate:      res.UsedTemplate,
		UsedFallback:      res.UsedFallback,
		RawResponse:       res.Raw,
	}
}

// NewSender 创建通知发送器
func NewSender(repo repository.MessageRepository, ch channel.Channel) NotificationSender {
	return &sender{
		repo:    repo,
		channel: ch,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("sender")),
	}
}
