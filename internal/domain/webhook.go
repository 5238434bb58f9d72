package domain

// InboundMessage 平台回调送达的会员入站消息
type InboundMessage struct {
	ProviderMessageID string `json:"providerMessageId"`
	From              string `json:"from"`
	Type              string `json:"type"`
	Body              string `json:"body"`
	Timestamp         int64  `json:"timestamp"`
}

// StatusUpdate 平台回调送达的出站消息状态变更
type StatusUpdate struct {
	ProviderMessageID string `json:"providerMessageId"`
	Recipient         string `json:"recipient"`
	Status            string `json:"status"`
	Timestamp         int64  `json:"timestamp"`
}

// OutboundRecord 出站消息留痕，写入消息日志
type OutboundRecord struct {
	ID                int64   `json:"id"`
	Recipient         string  `json:"recipient"`
	Channel           Channel `json:"channel"`
	Content           string  `json:"content"`
	TemplateName      string  `json:"templateName,omitempty"`
	ProviderMessageID string  `json:"providerMessageId,omitempty"`
	Success           bool    `json:"success"`
	UsedTemplate      bool    `json:"usedTemplate"`
	UsedFallback      bool    `json:"usedFallback"`
	RawResponse       string  `json:"rawResponse,omitempty"`
}
