package app

import (
	"context"

	"yadtamar_backend/internal/email"
	"yadtamar_backend/internal/logger"
)

// LogEmailProvider stands in for SMTP during local development: messages
// are logged instead of sent.
type LogEmailProvider struct{}

func (LogEmailProvider) Send(ctx context.Context, msg *email.Email) error {
	logger.CtxInfo(ctx, "email not sent (delivery disabled)",
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTMLBody),
	)
	return nil
}
