package email

import (
	"context"
	"fmt"

	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/metrics"
)

// Renderer turns template data into an html body.
type Renderer interface {
	Render(templateName string, data TemplateData) (string, error)
}

// Deliverer renders queued messages and hands them to a Provider.
type Deliverer struct {
	provider Provider
	renderer Renderer
}

func NewDeliverer(provider Provider, renderer Renderer) *Deliverer {
	return &Deliverer{provider: provider, renderer: renderer}
}

// Deliver renders and sends msg once. Failures are counted and returned;
// there are no retries.
func (d *Deliverer) Deliver(ctx context.Context, msg Message) error {
	err := d.deliver(ctx, msg)
	result := "sent"
	if err != nil {
		result = "failed"
	}
	metrics.EmailsSent.WithLabelValues(string(msg.Kind), result).Inc()
	logger.EmailLog(string(msg.Kind), msg.To, err)
	return err
}

func (d *Deliverer) deliver(ctx context.Context, msg Message) error {
	html, err := d.renderer.Render(string(msg.Kind), msg.Data)
	if err != nil {
		return fmt.Errorf("render %s: %w", msg.Kind, err)
	}
	return d.provider.Send(ctx, &Email{
		To:       []string{msg.To},
		Subject:  msg.Subject,
		HTMLBody: html,
	})
}
