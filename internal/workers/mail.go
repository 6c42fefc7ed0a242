package workers

//go:generate mockgen -source=mail.go -destination=mock_mail.go -package=workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/segmentio/kafka-go"
)

// MessageReader defines a Kafka consumer-group reader abstraction.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MailSender delivers a verification email.
type MailSender interface {
	Send(ctx context.Context, email models.VerificationEmail) error
}

// MailWorker consumes queued verification emails and hands them to the sender.
type MailWorker struct {
	reader     MessageReader
	sender     MailSender
	maxRetries int
	backoff    time.Duration
}

// MailWorkerOpt configures a MailWorker.
type MailWorkerOpt func(*MailWorker)

// WithMaxRetries sets how many delivery attempts a message gets before it is skipped.
func WithMaxRetries(n int) MailWorkerOpt {
	return func(w *MailWorker) {
		if n > 0 {
			w.maxRetries = n
		}
	}
}

// WithBackoff sets the base delay between attempts; attempt n waits n*backoff.
func WithBackoff(d time.Duration) MailWorkerOpt {
	return func(w *MailWorker) {
		w.backoff = d
	}
}

// NewMailWorker creates a new MailWorker.
func NewMailWorker(reader MessageReader, sender MailSender, opts ...MailWorkerOpt) *MailWorker {
	w := &MailWorker{
		reader:     reader,
		sender:     sender,
		maxRetries: 3,
		backoff:    time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run consumes messages until ctx is cancelled. Undecodable messages and
// messages that keep failing are committed and skipped.
func (w *MailWorker) Run(ctx context.Context) error {
	logger.Log.Infow("mail worker started")
	defer func() {
		if err := w.reader.Close(); err != nil {
			logger.Log.Errorw("failed to close kafka reader", "error", err)
		}
		logger.Log.Infow("mail worker stopped")
	}()

	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to fetch message", "error", err)
			if !w.sleep(ctx, w.backoff) {
				return nil
			}
			continue
		}

		if !w.handle(ctx, msg) {
			return nil
		}

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			logger.Log.Errorw("failed to commit message", "offset", msg.Offset, "error", err)
		}
	}
}

// handle reports false only when ctx was cancelled mid-retry, in which case
// the message stays uncommitted and is redelivered.
func (w *MailWorker) handle(ctx context.Context, msg kafka.Message) bool {
	var email models.VerificationEmail
	if err := json.Unmarshal(msg.Value, &email); err != nil {
		logger.Log.Errorw("failed to unmarshal verification email, skipping",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"error", err,
		)
		return true
	}

	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		lastErr = w.sender.Send(ctx, email)
		if lastErr == nil {
			return true
		}

		logger.Log.Warnw("mail delivery failed, will retry",
			"email", email.Email,
			"attempt", attempt,
			"max_retries", w.maxRetries,
			"error", lastErr,
		)
		if attempt < w.maxRetries && !w.sleep(ctx, time.Duration(attempt)*w.backoff) {
			return false
		}
	}

	logger.Log.Errorw("mail delivery failed after all retries, skipping message",
		"email", email.Email,
		"topic", msg.Topic,
		"partition", msg.Partition,
		"offset", msg.Offset,
		"error", lastErr,
	)
	return true
}

func (w *MailWorker) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
