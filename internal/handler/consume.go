package handler

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/avelasqz/biblioteca-service/pkg/kafka"
)

type recordEvent func(ctx context.Context, event kafka.EventLoan) error

// Consumer ingests loan events into the audit ledger. It holds no
// per-session state, so sarama may call Setup on it once per rebalance.
type Consumer struct {
	recordHandler recordEvent
	log           *zap.Logger
}

func NewConsumer(record recordEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			event, err := kafka.UnmarshalEventLoan(message.Value)
			if err != nil {
				consumer.log.Error("unmarshal loan event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordHandler(context.Background(), event); err != nil {
				consumer.log.Error("consumer.recordHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
