package inbound

import "fitsync-notify/internal/pkg/mqx"

const eventName = "inbound_message_events"

// MessageReceivedEvent 会员入站消息事件，供CRM侧消费
type MessageReceivedEvent struct {
	ProviderMessageID string `json:"providerMessageId"`
	From              string `json:"from"`
	Type              string `json:"type"`
	Body              string `json:"body"`
	Timestamp         int64  `json:"timestamp"`
}

type MessageReceivedEventProducer interface {
	mqx.Producer[MessageReceivedEvent]
}
