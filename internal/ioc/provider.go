package ioc

import (
	"net/http"
	"time"

	"github.com/gotomicro/ego/core/econf"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/channel"
	"fitsync-notify/internal/service/provider"
	"fitsync-notify/internal/service/provider/metrics"
	"fitsync-notify/internal/service/provider/push"
	"fitsync-notify/internal/service/provider/sms"
	smsclient "fitsync-notify/internal/service/provider/sms/client"
	"fitsync-notify/internal/service/provider/tracing"
	"fitsync-notify/internal/service/provider/whatsapp"
	waclient "fitsync-notify/internal/service/provider/whatsapp/client"
	"fitsync-notify/internal/service/router"
	"fitsync-notify/internal/service/token"
	"fitsync-notify/internal/service/windowpolicy"
)

const defaultRemoteTimeout = 10 * time.Second

type platformConfig struct {
	CredentialURL string        `yaml:"credentialUrl"`
	WindowURL     string        `yaml:"windowUrl"`
	MessageURL    string        `yaml:"messageUrl"`
	TemplateURL   string        `yaml:"templateUrl"`
	Timeout       time.Duration `yaml:"timeout"`
}

func initPlatformConfig() platformConfig {
	var cfg platformConfig
	err := econf.UnmarshalKey("platform", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRemoteTimeout
	}
	return cfg
}

// InitRouter 组装会话平台的智能分发器
func InitRouter() *router.Dispatcher {
	cfg := initPlatformConfig()

	// 每个远程调用都有兜底超时，超时按网络失败处理
	httpClient := &http.Client{Timeout: cfg.Timeout}

	tokens := token.NewManager(cfg.CredentialURL, httpClient)
	checker := windowpolicy.NewChecker(cfg.WindowURL, httpClient)
	client := waclient.NewClient(cfg.MessageURL, cfg.TemplateURL, tokens, httpClient)

	direct := decorate("whatsapp-direct", whatsapp.NewDirectProvider(client))
	template := whatsapp.NewFallbackResolver(
		decorate("whatsapp-template", whatsapp.NewTemplateProvider(client)),
	)

	return router.NewDispatcher(checker, direct, template)
}

// InitChannels 组装渠道分发器
func InitChannels(r *router.Dispatcher) *channel.Dispatcher {
	type smsConfig struct {
		Endpoint   string `yaml:"endpoint"`
		AccountSID string `yaml:"accountSid"`
		AuthToken  string `yaml:"authToken"`
		From       string `yaml:"from"`
	}
	var smsCfg smsConfig
	if err := econf.UnmarshalKey("sms", &smsCfg); err != nil {
		panic(err)
	}

	var pushCfg push.Config
	if err := econf.UnmarshalKey("push", &pushCfg); err != nil {
		panic(err)
	}

	httpClient := &http.Client{Timeout: defaultRemoteTimeout}
	smsProvider := sms.NewSMSProvider(smsCfg.From,
		smsclient.NewClient(smsCfg.Endpoint, smsCfg.AccountSID, smsCfg.AuthToken, httpClient))

	return channel.NewDispatcher(map[domain.Channel]channel.Channel{
		domain.ChannelWhatsApp: channel.NewWhatsAppChannel(r),
		domain.ChannelSMS:      channel.NewProviderChannel(decorate("sms", smsProvider)),
		domain.ChannelPush:     channel.NewProviderChannel(decorate("webpush", push.NewPushProvider(pushCfg, httpClient))),
	})
}

// decorate 给适配器套上链路追踪和指标收集
func decorate(name string, p provider.Provider) provider.Provider {
	return metrics.NewProvider(name, tracing.NewProvider(p, name))
}
