package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	LoanTopic          = "loan-events"
	AuditConsumerGroup = "biblioteca-audit"
)

type EventType string

const (
	EventLoanCreated   EventType = "CREATED"
	EventLoanApproved  EventType = "APPROVED"
	EventLoanCancelled EventType = "CANCELLED"
	EventLoanReturned  EventType = "RETURNED"
)

// EventLoan is published on every successful loan mutation and consumed
// into the loan_events audit table.
type EventLoan struct {
	LoanUid     string    `json:"loanUid"`
	ReaderID    int64     `json:"readerId"`
	LibrarianID int64     `json:"librarianId"`
	MaterialID  int64     `json:"materialId"`
	EventType   EventType `json:"eventType"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e EventLoan) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEventLoan(data []byte) (EventLoan, error) {
	var e EventLoan
	err := json.Unmarshal(data, &e)
	return e, err
}

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer-group session loop until ctx is cancelled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) error {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
