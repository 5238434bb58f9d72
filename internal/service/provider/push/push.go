package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/errs"
	"fitsync-notify/internal/service/provider"
)

const defaultTTL = 300

// Config 浏览器推送所需的 VAPID 配置
type Config struct {
	Subscriber      string `yaml:"subscriber"`
	VAPIDPublicKey  string `yaml:"vapidPublicKey"`
	VAPIDPrivateKey string `yaml:"vapidPrivateKey"`
	TTL             int    `yaml:"ttl"`
}

// payload 标准浏览器 Push API 信封
type payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
	Data  struct {
		URL string `json:"url"`
	} `json:"data"`
}

// pushProvider 向已存储的浏览器推送订阅投递，走 Web Push 而非会话平台
type pushProvider struct {
	cfg    Config
	client *http.Client
}

func (p *pushProvider) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	var body payload
	body.Title = req.Push.Title
	body.Body = req.Push.Body
	body.Icon = req.Push.Icon
	body.Data.URL = req.Push.URL

	raw, err := json.Marshal(body)
	if err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}

	sub := &webpush.Subscription{
		Endpoint: req.Subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: req.Subscription.P256dh,
			Auth:   req.Subscription.Auth,
		},
	}

	// 推送服务的调用和其他远程调用一样带兜底超时，超时按网络失败处理
	resp, err := webpush.SendNotificationWithContext(ctx, raw, sub, &webpush.Options{
		HTTPClient:      p.client,
		Subscriber:      p.cfg.Subscriber,
		VAPIDPublicKey:  p.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: p.cfg.VAPIDPrivateKey,
		TTL:             p.ttl(),
	})
	if err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("%w: %w", errs.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.DeliveryResult{
			Success: false,
			Message: fmt.Sprintf("推送服务返回 %d", resp.StatusCode),
		}, nil
	}

	return domain.DeliveryResult{
		Success: true,
		Message: "发送成功",
	}, nil
}

func (p *pushProvider) ttl() int {
	if p.cfg.TTL > 0 {
		return p.cfg.TTL
	}
	return defaultTTL
}

// NewPushProvider 浏览器推送适配器
func NewPushProvider(cfg Config, client *http.Client) provider.Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &pushProvider{cfg: cfg, client: client}
}
