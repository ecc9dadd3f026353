package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"github.com/Bovice22/axequacks-app-sub000/internal/reservations"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
)

// Consumer drains the booking topic and turns events into guest emails.
type Consumer interface {
	Start(ctx context.Context, numWorkers int) error
	Stop() error
}

// ConsumerConfig contains configuration for the booking event consumer
type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topics           []string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "axequacks-notifications",
		Topics:           []string{"booking-events"},
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     false,
	}
}

// KafkaConsumer runs a consumer group of email workers.
type KafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	emailService  EmailService
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

func NewKafkaConsumer(config *ConsumerConfig, emailService EmailService) (Consumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &KafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		emailService:  emailService,
	}, nil
}

func (c *KafkaConsumer) Start(ctx context.Context, numWorkers int) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go c.handleErrors()

	for i := 0; i < numWorkers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			c.runWorker(ctx, workerID)
		}(i)
	}

	logger.GetDefault().Info("booking event consumers started",
		"workers", numWorkers,
		"topics", c.config.Topics,
	)
	return nil
}

func (c *KafkaConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &bookingEventHandler{
		workerID:     workerID,
		emailService: c.emailService,
	}

	for {
		if ctx.Err() != nil {
			return
		}
		// Consume blocks through one rebalance cycle, then returns to rejoin
		if err := c.consumerGroup.Consume(ctx, c.config.Topics, handler); err != nil {
			logger.GetDefault().Error("consumer worker error", "worker", workerID, "error", err)
			time.Sleep(time.Second)
		}
	}
}

func (c *KafkaConsumer) handleErrors() {
	for err := range c.consumerGroup.Errors() {
		logger.GetDefault().Error("consumer group error", "error", err)
	}
}

func (c *KafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

// bookingEventHandler implements sarama.ConsumerGroupHandler.
type bookingEventHandler struct {
	workerID     int
	emailService EmailService
}

func (h *bookingEventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *bookingEventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *bookingEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := h.handle(session.Context(), message); err != nil {
			// Malformed or undeliverable events are logged and skipped;
			// blocking the partition on one bad message helps nobody.
			logger.GetDefault().Error("failed to process booking event",
				"worker", h.workerID,
				"partition", message.Partition,
				"offset", message.Offset,
				"error", err,
			)
		}
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *bookingEventHandler) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event reservations.BookingEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}

	switch event.Type {
	case reservations.EventBookingConfirmed:
		return h.emailService.SendBookingConfirmation(ctx, event)
	case reservations.EventBookingCancelled:
		return h.emailService.SendBookingCancellation(ctx, event)
	default:
		return fmt.Errorf("unknown booking event type %q", event.Type)
	}
}
