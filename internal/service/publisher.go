package service

import (
	"time"

	"github.com/IBM/sarama"

	"github.com/avelasqz/biblioteca-service/pkg/circuit_breaker"
	"github.com/avelasqz/biblioteca-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=publisher.go -destination=mocks/publisher.go

type Publisher interface {
	Publish(event kafka.EventLoan) error
}

// NewPublisher wraps a sarama sync producer with a circuit breaker so a
// broker outage degrades event delivery instead of piling up timeouts.
func NewPublisher(producer sarama.SyncProducer) Publisher {
	return &publisherImpl{
		producer: producer,
		cb:       circuit_breaker.New(20, time.Second*30, 0.5, 3),
	}
}

type publisherImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (p *publisherImpl) Publish(event kafka.EventLoan) error {
	data, err := event.Marshal()
	if err != nil {
		return err
	}
	return p.cb.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: kafka.LoanTopic, Value: sarama.ByteEncoder(data)}
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}
