package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"matrimony-service/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ProfilePublisher announces profile changes to downstream consumers
// (matching, search indexing, notifications).
type ProfilePublisher interface {
	PublishProfileUpdated(ctx context.Context, evt domain.ProfileUpdatedEvent) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer MessageWriter
	logger *zap.Logger
}

// NewKafkaWriter builds the writer used for profile events.
func NewKafkaWriter(brokers []string, topic string, logger *zap.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // keyed by user id so a user's events stay ordered
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Debug(fmt.Sprintf(msg, args...))
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error(fmt.Sprintf(msg, args...))
		}),
	}
}

func NewKafkaPublisher(writer MessageWriter, logger *zap.Logger) ProfilePublisher {
	return &kafkaPublisher{writer: writer, logger: logger}
}

func (p *kafkaPublisher) PublishProfileUpdated(ctx context.Context, evt domain.ProfileUpdatedEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal profile event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.UserID),
		Value: data,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish profile event: %w", err)
	}

	p.logger.Debug("profile event published",
		zap.String("event_id", evt.EventID),
		zap.String("user_id", evt.UserID),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when no brokers are configured.
func NewNoopPublisher() ProfilePublisher { return noopPublisher{} }

func (noopPublisher) PublishProfileUpdated(context.Context, domain.ProfileUpdatedEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }
