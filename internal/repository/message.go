package repository

import (
	"context"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/repository/dao"
)

//go:generate mockgen -source=./message.go -destination=./mocks/message.mock.go -package=repomocks MessageRepository

// MessageRepository 消息日志仓储：出站留痕与入站回调的写入口
type MessageRepository interface {
	LogOutbound(ctx context.Context, rec domain.OutboundRecord) (int64, error)
	SaveInbound(ctx context.Context, msg domain.InboundMessage) error
	UpdateStatus(ctx context.Context, update domain.StatusUpdate) error
}

const (
	statusSucceeded = "SUCCEEDED"
	statusFailed    = "FAILED"
)

type messageRepository struct {
	dao dao.MessageDAO
}

func (r *messageRepository) LogOutbound(ctx context.Context, rec domain.OutboundRecord) (int64, error) {
	status := statusFailed
	if rec.Success {
		status = statusSucceeded
	}
	return r.dao.InsertOutbound(ctx, dao.OutboundMessage{
		Recipient:         rec.Recipient,
		Channel:           rec.Channel.String(),
		Content:           rec.Content,
		TemplateName:      rec.TemplateName,
		ProviderMessageID: rec.ProviderMessageID,
		Status:            status,
		UsedTemplate:      rec.UsedTemplate,
		UsedFallback:      rec.UsedFallback,
		RawResponse:       rec.RawResponse,
	})
}

func (r *messageRepository) SaveInbound(ctx context.Context, msg domain.InboundMessage) error {
	return r.dao.InsertInbound(ctx, dao.InboundMessage{
		ProviderMessageID: msg.ProviderMessageID,
		Sender:            msg.From,
		Type:              msg.Type,
		Content:           msg.Body,
		Timestamp:         msg.Timestamp,
	})
}

func (r *messageRepository) UpdateStatus(ctx context.Context, update domain.StatusUpdate) error {
	return r.dao.UpdateOutboundStatus(ctx, update.ProviderMessageID, update.Status)
}

func NewMessageRepository(d dao.MessageDAO) MessageRepository {
	return &messageRepository{dao: d}
}
