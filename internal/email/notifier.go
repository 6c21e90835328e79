package email

import (
	"context"

	"yadtamar_backend/internal/logger"
)

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks yadtamar_backend/internal/email Notifier

// Notifier sends account decision emails. Implementations never block on
// delivery and never fail the caller.
type Notifier interface {
	NotifyApproved(ctx context.Context, to, name, password string)
	NotifyRejected(ctx context.Context, to, name string)
}

type notifier struct {
	dispatcher Dispatcher
}

func NewNotifier(dispatcher Dispatcher) Notifier {
	return &notifier{dispatcher: dispatcher}
}

func (n *notifier) NotifyApproved(ctx context.Context, to, name, password string) {
	n.dispatch(ctx, Message{
		Kind:    KindAccountApproved,
		To:      to,
		Subject: "Successfully connected to Yad Tamar",
		Data: TemplateData{
			"Name":     name,
			"Email":    to,
			"Password": password,
		},
	})
}

func (n *notifier) NotifyRejected(ctx context.Context, to, name string) {
	n.dispatch(ctx, Message{
		Kind:    KindAccountRejected,
		To:      to,
		Subject: "Your Yad Tamar registration",
		Data:    TemplateData{"Name": name},
	})
}

func (n *notifier) dispatch(ctx context.Context, msg Message) {
	if msg.To == "" {
		logger.CtxWarn(ctx, "no recipient for notification", "kind", msg.Kind)
		return
	}
	if err := n.dispatcher.Dispatch(ctx, msg); err != nil {
		logger.CtxWithError(ctx, "failed to dispatch notification", err, "kind", msg.Kind, "to", msg.To)
	}
}
