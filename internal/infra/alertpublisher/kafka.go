package alertpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

type alertMessage struct {
	Zone      string    `json:"zone"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a Kafka producer, or returns a no-op publisher when no
// brokers are configured.
func NewPublisher(ctx context.Context, cfg *Config) (domain.AlertPublisher, error) {
	if len(cfg.Brokers) == 0 {
		slog.InfoContext(ctx, "KAFKA_BROKERS not configured, alert publishing disabled")
		return NewNoopPublisher(), nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Net.DialTimeout = 10 * time.Second
	saramaConfig.Net.ReadTimeout = 10 * time.Second
	saramaConfig.Net.WriteTimeout = 10 * time.Second

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	slog.InfoContext(ctx, "alert publisher initialized",
		slog.String("type", "kafka"),
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	return newKafkaPublisher(producer, cfg.Topic), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish sends one message per entry, keyed by zone so a zone's alerts stay
// ordered within a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, entries []domain.NotificationEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(entries))
	for _, entry := range entries {
		payload, err := json.Marshal(alertMessage{
			Zone:      entry.Zone,
			Level:     entry.Level.String(),
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
		if err != nil {
			return fmt.Errorf("failed to encode alert for %s: %w", entry.Zone, err)
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic:     p.topic,
			Key:       sarama.StringEncoder(entry.Zone),
			Value:     sarama.ByteEncoder(payload),
			Timestamp: entry.Timestamp,
		})
	}

	if err := p.producer.SendMessages(messages); err != nil {
		return fmt.Errorf("failed to publish %d alerts to %s: %w", len(messages), p.topic, err)
	}

	slog.DebugContext(ctx, "alerts published",
		slog.String("topic", p.topic),
		slog.Int("count", len(messages)),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
