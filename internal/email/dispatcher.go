package email

import (
	"context"
	"sync"
	"time"
)

// Dispatcher accepts a message for delivery without waiting for it to be sent.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// AsyncDispatcher delivers each message on its own goroutine. It is used when
// no Redis outbox is configured.
type AsyncDispatcher struct {
	deliverer *Deliverer
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewAsyncDispatcher(deliverer *Deliverer) *AsyncDispatcher {
	return &AsyncDispatcher{deliverer: deliverer, timeout: 30 * time.Second}
}

func (d *AsyncDispatcher) Dispatch(_ context.Context, msg Message) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		// detached from the request context, which ends with the response
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		_ = d.deliverer.Deliver(ctx, msg)
	}()
	return nil
}

// Wait blocks until in-flight deliveries finish.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}

// NoopDispatcher drops every message. Used when email is disabled.
type NoopDispatcher struct{}

func (NoopDispatcher) Dispatch(context.Context, Message) error { return nil }
