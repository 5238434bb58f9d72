package ioc

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"

	"fitsync-notify/internal/event/inbound"
)

func InitKafkaProducer() *kafka.Producer {
	type Config struct {
		BootstrapServers string `yaml:"bootstrapServers"`
	}
	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.BootstrapServers,
	})
	if err != nil {
		panic(err)
	}
	return producer
}

func InitMessageReceivedEventProducer(producer *kafka.Producer) inbound.MessageReceivedEventProducer {
	p, err := inbound.NewMessageReceivedEventProducer(producer)
	if err != nil {
		panic(err)
	}
	return p
}
