package services

//go:generate mockgen -source=mail.go -destination=mock_mail.go -package=services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrPublisherNotConfigured is returned when no Kafka writer was provided.
var ErrPublisherNotConfigured = errors.New("kafka writer not configured")

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MailPublisher queues verification emails on a Kafka topic for the mail worker.
type MailPublisher struct {
	writer KafkaWriter
}

// NewMailPublisher creates a new MailPublisher.
func NewMailPublisher(writer KafkaWriter) *MailPublisher {
	return &MailPublisher{writer: writer}
}

// PublishVerification writes the message keyed by recipient address.
func (p *MailPublisher) PublishVerification(ctx context.Context, msg models.VerificationEmail) error {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "email", msg.Email)
		return ErrPublisherNotConfigured
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Email),
		Value: data,
	}); err != nil {
		return err
	}

	logger.Log.Infow("Verification email published to Kafka", "email", msg.Email)
	return nil
}
