package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/Bovice22/axequacks-app-sub000/internal/reservations"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
)

// Producer publishes booking lifecycle events to the booking topic. It
// satisfies the reservations EventPublisher contract.
type Producer interface {
	PublishBookingEvent(ctx context.Context, event reservations.BookingEvent) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka booking producer
type ProducerConfig struct {
	Brokers          []string
	BookingTopic     string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:          []string{"localhost:9092"},
		BookingTopic:     "booking-events",
		RetryMax:         3,
		TimeoutMs:        10000,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
	}
}

// KafkaProducer publishes booking events through a synchronous producer so a
// confirmed booking is never acknowledged before its event is durable.
type KafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

func NewKafkaProducer(config *ProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps one date's events on one partition, in order
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.GetDefault().Info("Kafka booking producer created", "topic", config.BookingTopic)
	return &KafkaProducer{producer: producer, config: config}, nil
}

func (p *KafkaProducer) PublishBookingEvent(ctx context.Context, event reservations.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.BookingTopic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	logger.GetDefault().Debug("booking event published",
		"type", string(event.Type),
		"booking_ref", event.BookingRef,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaProducer) HealthCheck(ctx context.Context) error {
	// SyncProducer exposes no ping; a nil producer is the only local failure
	if p.producer == nil {
		return fmt.Errorf("kafka producer is not initialized")
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}

// NoopProducer drops events. Used when Kafka is disabled by configuration so
// the booking flow never depends on a broker being present.
type NoopProducer struct{}

func (NoopProducer) PublishBookingEvent(ctx context.Context, event reservations.BookingEvent) error {
	logger.GetDefault().Debug("kafka disabled, dropping booking event",
		"type", string(event.Type),
		"booking_ref", event.BookingRef,
	)
	return nil
}

func (NoopProducer) HealthCheck(context.Context) error { return nil }

func (NoopProducer) Close() error { return nil }
