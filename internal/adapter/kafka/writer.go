package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/clima/internal/cache"
	"github.com/couchcryptid/clima/internal/domain"
)

// Publisher produces freshly fetched weather results to a Kafka topic.
// It implements weather.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for topic. A nil clock uses real time.
func NewPublisher(brokers []string, topic string, clock clockwork.Clock, logger *slog.Logger) *Publisher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, clock: clock, logger: logger.With("component", "kafka")}
}

// Publish writes result keyed by the city's cache key, so lookups of the
// same city land on the same partition.
func (p *Publisher) Publish(ctx context.Context, city string, result domain.WeatherResult) error {
	msg, err := serializeToMessage(cache.Key(city), result, p.clock.Now())
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish weather result: %w", err)
	}
	p.logger.Debug("weather result published", "key", string(msg.Key))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a WeatherResult into a Kafka message.
func serializeToMessage(key string, result domain.WeatherResult, fetchedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize weather result: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "icon", Value: []byte(result.Icon)},
			{Key: "fetched_at", Value: []byte(fetchedAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}
