package web

import (
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/event/inbound"
	"fitsync-notify/internal/repository"
	"fitsync-notify/internal/repository/cache"
)

var _ ginx.Handler = &WebhookHandler{}

// WebhookHandler 接收消息平台的回调。
// 平台按重投语义批量推送消息与状态事件：单条失败只记录日志不重试，
// 端点无论如何都确认 200，由平台的粗粒度重投兜底。
type WebhookHandler struct {
	repo        repository.MessageRepository
	deduper     cache.EventDeduper
	producer    inbound.MessageReceivedEventProducer
	verifyToken string
	logger      *elog.Component
}

func NewWebhookHandler(
	repo repository.MessageRepository,
	deduper cache.EventDeduper,
	producer inbound.MessageReceivedEventProducer,
	verifyToken string,
) *WebhookHandler {
	return &WebhookHandler{
		repo:        repo,
		deduper:     deduper,
		producer:    producer,
		verifyToken: verifyToken,
		logger:      elog.DefaultLogger.With(elog.FieldComponent("web.WebhookHandler")),
	}
}

func (h *WebhookHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/webhook", h.Verify)
	server.POST("/webhook", h.Receive)
}

func (h *WebhookHandler) PrivateRoutes(_ *gin.Engine) {}

type messageVO struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Type      string `json:"type"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

type statusVO struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type webhookPayload struct {
	Messages []messageVO `json:"messages"`
	Statuses []statusVO  `json:"statuses"`
}

// Verify 平台接入时的握手校验
func (h *WebhookHandler) Verify(ctx *gin.Context) {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	if mode == "subscribe" && token == h.verifyToken {
		ctx.String(http.StatusOK, ctx.Query("hub.challenge"))
		return
	}
	ctx.Status(http.StatusForbidden)
}

// Receive 批量回调入口
func (h *WebhookHandler) Receive(ctx *gin.Context) {
	var payload webhookPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		// 报文不可解析也要确认，否则平台会无限重投同一批
		h.logger.Warn("回调报文解析失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	var errAll *multierror.Error

	messages := slice.Map(payload.Messages, func(_ int, vo messageVO) domain.InboundMessage {
		return domain.InboundMessage{
			ProviderMessageID: vo.ID,
			From:              vo.From,
			Type:              vo.Type,
			Body:              vo.Body,
			Timestamp:         vo.Timestamp,
		}
	})
	for _, msg := range messages {
		if err := h.handleMessage(ctx, msg); err != nil {
			errAll = multierror.Append(errAll, fmt.Errorf("消息 %s: %w", msg.ProviderMessageID, err))
		}
	}

	for _, vo := range payload.Statuses {
		if err := h.handleStatus(ctx, domain.StatusUpdate{
			ProviderMessageID: vo.ID,
			Recipient:         vo.Recipient,
			Status:            vo.Status,
			Timestamp:         vo.Timestamp,
		}); err != nil {
			errAll = multierror.Append(errAll, fmt.Errorf("状态 %s: %w", vo.ID, err))
		}
	}

	if err := errAll.ErrorOrNil(); err != nil {
		h.logger.Warn("部分回调事件处理失败", elog.FieldErr(err))
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WebhookHandler) handleMessage(ctx *gin.Context, msg domain.InboundMessage) error {
	first, err := h.deduper.FirstSeen(ctx.Request.Context(), msg.ProviderMessageID)
	if err != nil {
		// 去重基础设施异常时按首次处理，落库有唯一索引兜底
		h.logger.Warn("事件去重失败", elog.FieldErr(err))
		first = true
	}
	if !first {
		return nil
	}

	if err := h.repo.SaveInbound(ctx.Request.Context(), msg); err != nil {
		return err
	}

	if err := h.producer.Produce(ctx.Request.Context(), inbound.MessageReceivedEvent{
		ProviderMessageID: msg.ProviderMessageID,
		From:              msg.From,
		Type:              msg.Type,
		Body:              msg.Body,
		Timestamp:         msg.Timestamp,
	}); err != nil {
		return err
	}
	return nil
}

func (h *WebhookHandler) handleStatus(ctx *gin.Context, update domain.StatusUpdate) error {
	first, err := h.deduper.FirstSeen(ctx.Request.Context(), fmt.Sprintf("%s:%s", update.ProviderMessageID, update.Status))
	if err != nil {
		h.logger.Warn("事件去重失败", elog.FieldErr(err))
		first = true
	}
	if !first {
		return nil
	}
	return h.repo.UpdateStatus(ctx.Request.Context(), update)
}
