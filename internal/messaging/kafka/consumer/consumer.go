package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rhplus/internal/shared/metrics"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need. Offsets
// are committed explicitly.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ErrStalled is returned when a message still fails after every retry. The
// consumer stops without committing it, so the group redelivers it from the
// last committed offset after a restart.
var ErrStalled = errors.New("consumer stalled on message")

// errSkip marks a message that can never be handled. It is committed so the
// partition moves on.
var errSkip = errors.New("skip message")

func skip(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errSkip, fmt.Sprintf(format, args...))
}

type handlerFunc func(ctx context.Context, msg kafkago.Message) error

type retryPolicy struct {
	attempts int
	initial  time.Duration
	max      time.Duration
}

// delay doubles from initial on each attempt, capped at max.
func (p retryPolicy) delay(attempt int) time.Duration {
	d := p.initial
	for i := 1; i < attempt && d < p.max; i++ {
		d *= 2
	}
	return min(d, p.max)
}

var retry = retryPolicy{attempts: 5, initial: 500 * time.Millisecond, max: 15 * time.Second}

// wait sleeps for d and reports false when ctx ends first.
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// consume fetches messages until ctx is cancelled. A message is committed
// after handle succeeds or returns errSkip. Other errors are retried with
// backoff on the same message; once retries run out consume returns
// ErrStalled with the message uncommitted, because committing any later
// offset would acknowledge it.
func consume(ctx context.Context, reader MessageReader, name string, handle handlerFunc, log *zap.Logger) error {
	log.Info("consumer started")

	fetchFailures := 0
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return nil
			}
			fetchFailures++
			log.Error("fetch message failed", zap.Int("failures", fetchFailures), zap.Error(err))
			if !wait(ctx, retry.delay(fetchFailures)) {
				log.Info("consumer stopped")
				return nil
			}
			continue
		}
		fetchFailures = 0

		fields := []zap.Field{
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		}

		err = handleWithRetry(ctx, msg, handle, log.With(fields...))
		switch {
		case err == nil:
			metrics.ConsumedMessagesTotal.WithLabelValues(name, "ok").Inc()
		case errors.Is(err, errSkip):
			metrics.ConsumedMessagesTotal.WithLabelValues(name, "skipped").Inc()
			log.Warn("message skipped", append(fields, zap.Error(err))...)
		case ctx.Err() != nil:
			log.Info("consumer stopped before message was handled", fields...)
			return nil
		default:
			metrics.ConsumedMessagesTotal.WithLabelValues(name, "failed").Inc()
			log.Error("handle message failed, stopping consumer", append(fields, zap.Error(err))...)
			return fmt.Errorf("%w: %s/%d@%d: %v", ErrStalled, msg.Topic, msg.Partition, msg.Offset, err)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", append(fields, zap.Error(err))...)
		}
	}
}

func handleWithRetry(ctx context.Context, msg kafkago.Message, handle handlerFunc, log *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= retry.attempts; attempt++ {
		err = handle(ctx, msg)
		if err == nil || errors.Is(err, errSkip) {
			return err
		}
		if attempt == retry.attempts {
			break
		}

		d := retry.delay(attempt)
		log.Warn("handle message failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", d),
			zap.Error(err),
		)
		if !wait(ctx, d) {
			return err
		}
	}
	return err
}
