package inbound

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"fitsync-notify/internal/pkg/mqx"
)

func NewMessageReceivedEventProducer(producer *kafka.Producer) (MessageReceivedEventProducer, error) {
	return mqx.NewGeneralProducer[MessageReceivedEvent](producer, eventName)
}
