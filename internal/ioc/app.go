package ioc

import (
	"github.com/gotomicro/ego/server/egin"

	"fitsync-notify/internal/repository"
	"fitsync-notify/internal/repository/dao"
	"fitsync-notify/internal/service/sender"
)

type App struct {
	WebServer *egin.Component
	Sender    sender.NotificationSender
}

// InitApp 组装整个分发器
func InitApp() *App {
	db := InitDB()
	rdb := InitRedis()
	repo := repository.NewMessageRepository(dao.NewMessageDAO(db))

	r := InitRouter()
	channels := InitChannels(r)

	kafkaProducer := InitKafkaProducer()
	eventProducer := InitMessageReceivedEventProducer(kafkaProducer)
	handler := InitWebhookHandler(repo, rdb, eventProducer)

	return &App{
		WebServer: InitWebServer(handler),
		Sender:    sender.NewSender(repo, channels),
	}
}
