package workers

import (
	"context"
	"errors"
	"time"

	"yadtamar_backend/internal/email"
	"yadtamar_backend/internal/logger"
)

// MessageSource yields queued email messages.
type MessageSource interface {
	Pop(ctx context.Context, timeout time.Duration) (email.Message, error)
}

// MessageDeliverer sends a single message.
type MessageDeliverer interface {
	Deliver(ctx context.Context, msg email.Message) error
}

// EmailWorker drains the email outbox. A failed delivery is logged and
// dropped.
type EmailWorker struct {
	source      MessageSource
	deliverer   MessageDeliverer
	pollTimeout time.Duration
	backoff     time.Duration
}

func NewEmailWorker(source MessageSource, deliverer MessageDeliverer) *EmailWorker {
	return &EmailWorker{
		source:      source,
		deliverer:   deliverer,
		pollTimeout: 5 * time.Second,
		backoff:     2 * time.Second,
	}
}

// Run blocks until ctx is cancelled.
func (w *EmailWorker) Run(ctx context.Context) error {
	logger.WorkerLog("email", "start", nil)
	for {
		if ctx.Err() != nil {
			logger.WorkerLog("email", "stop", nil)
			return nil
		}

		msg, err := w.source.Pop(ctx, w.pollTimeout)
		switch {
		case errors.Is(err, email.ErrQueueEmpty):
			continue
		case err != nil:
			if ctx.Err() != nil {
				continue
			}
			logger.WorkerLog("email", "pop", err)
			select {
			case <-ctx.Done():
			case <-time.After(w.backoff):
			}
			continue
		}

		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := w.deliverer.Deliver(sendCtx, msg); err != nil {
			logger.WorkerLog("email", "deliver", err, "kind", msg.Kind, "to", msg.To)
		}
		cancel()
	}
}
