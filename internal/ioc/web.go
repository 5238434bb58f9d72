package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"

	"fitsync-notify/internal/api/web"
	"fitsync-notify/internal/event/inbound"
	"fitsync-notify/internal/repository"
	localcache "fitsync-notify/internal/repository/cache/local"
	rediscache "fitsync-notify/internal/repository/cache/redis"
	"github.com/redis/go-redis/v9"
)

func InitWebhookHandler(
	repo repository.MessageRepository,
	rdb redis.Cmdable,
	producer inbound.MessageReceivedEventProducer,
) *web.WebhookHandler {
	type Config struct {
		VerifyToken string `yaml:"verifyToken"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("webhook", &cfg); err != nil {
		panic(err)
	}

	deduper := localcache.NewDeduper(rediscache.NewEventDeduper(rdb))
	return web.NewWebhookHandler(repo, deduper, producer, cfg.VerifyToken)
}

func InitWebServer(handler *web.WebhookHandler) *egin.Component {
	server := egin.Load("server.http").Build()
	handler.PublicRoutes(server.Engine)
	return server
}
