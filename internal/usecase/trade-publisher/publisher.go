package tradepublisher

import (
	"context"
	"encoding/json"

	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	"github.com/memespace/market-engine/pkg/config"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Publisher represents a Kafka publisher for publishing trade events.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

// NewPublisher creates a new Kafka publisher for publishing trade events.
func NewPublisher(config config.KafkaConfig, logger logger.Interface) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      logger,
	}
}

// PublishTradeEvent publishes a trade event to the Kafka topic. Messages are
// keyed by market so consumers see each market's trades in order.
func (p *Publisher) PublishTradeEvent(ctx context.Context, event *marketv1.TradeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.TracerFromError(err)
	}

	msg := kafka.Message{
		Key:   []byte(event.MarketID),
		Value: payload,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "action", Value: "publish_trade_event"},
			logger.Field{Key: "tradeID", Value: event.ID},
			logger.Field{Key: "marketID", Value: event.MarketID},
		)
		return errors.NewTracer("failed to publish trade event")
	}
	return nil
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
