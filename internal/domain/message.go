package domain

import (
	"fmt"

	"fitsync-notify/internal/errs"
)

// Channel 发送渠道
type Channel string

const (
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelSMS      Channel = "SMS"
	ChannelPush     Channel = "PUSH"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelWhatsApp, ChannelSMS, ChannelPush:
		return true
	default:
		return false
	}
}

const (
	// DefaultTemplateName 平台保证可用的兜底模版
	DefaultTemplateName = "hello_world"
	// DefaultTemplateLanguage 兜底模版语言
	DefaultTemplateLanguage = "en_US"
)

// Template 模版消息描述：模版名、语言和按顺序替换的参数
type Template struct {
	Name       string   `json:"name"`
	Language   string   `json:"language"`
	Components []string `json:"components,omitempty"`
}

// PushSubscription 浏览器推送订阅，入库时由会员端上报
type PushSubscription struct {
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// PushMessage 推送消息载荷
type PushMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
	URL   string `json:"url,omitempty"`
}

// MessageRequest 一次出站消息请求。
// Body 与 Template.Name 二选一，决定出站报文形态。
type MessageRequest struct {
	Channel  Channel  `json:"channel"`
	To       string   `json:"to"`
	Body     string   `json:"body,omitempty"`
	Template Template `json:"template"`

	Push         *PushMessage      `json:"push,omitempty"`
	Subscription *PushSubscription `json:"subscription,omitempty"`

	// FallbackAttempts 已执行的兜底替换次数，资源层用它保证兜底只发生一次
	FallbackAttempts int `json:"fallbackAttempts"`
}

// AsFallback 返回替换为兜底模版后的请求副本，替换次数加一。
// 兜底模版不接受参数，Components 被清空。
func (r MessageRequest) AsFallback() MessageRequest {
	r.Template = Template{
		Name:     DefaultTemplateName,
		Language: DefaultTemplateLanguage,
	}
	r.FallbackAttempts++
	return r
}

// IsTemplated 是否走模版路径
func (r MessageRequest) IsTemplated() bool {
	return r.Template.Name != ""
}

func (r MessageRequest) Validate() error {
	if !r.Channel.IsValid() {
		return fmt.Errorf("%w: Channel = %q", errs.ErrInvalidParameter, r.Channel)
	}

	if r.Channel == ChannelPush {
		if r.Subscription == nil || r.Subscription.Endpoint == "" {
			return fmt.Errorf("%w: 缺少推送订阅", errs.ErrInvalidParameter)
		}
		if r.Push == nil {
			return fmt.Errorf("%w: 缺少推送载荷", errs.ErrInvalidParameter)
		}
		return nil
	}

	if r.To == "" {
		return fmt.Errorf("%w: To = %q", errs.ErrInvalidParameter, r.To)
	}

	if r.Channel == ChannelSMS {
		if r.Body == "" {
			return fmt.Errorf("%w: 短信缺少 Body", errs.ErrInvalidParameter)
		}
		return nil
	}

	// 会话渠道：自由文本或模版至少其一。两者都有时 Body 表达发送意图，
	// Template 只是窗口外的兜底偏好，出站报文形态始终由其中一个驱动。
	if r.Body == "" && r.Template.Name == "" {
		return fmt.Errorf("%w: Body 与 Template.Name 至少填一个", errs.ErrInvalidParameter)
	}

	return nil
}

// DeliveryResult 统一发送结果。无论成败都返回结构化结果，分发器边界不抛错。
type DeliveryResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	ProviderMessageID string `json:"providerMessageId,omitempty"`
	UsedTemplate      bool   `json:"usedTemplate"`
	UsedFallback      bool   `json:"usedFallback"`
	Raw               string `json:"-"`
}
