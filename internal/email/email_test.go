package email

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu   sync.Mutex
	sent []*Email
	err  error
}

func (p *fakeProvider) Send(_ context.Context, e *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, e)
	return nil
}

type recordingDispatcher struct {
	messages []Message
	err      error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg Message) error {
	d.messages = append(d.messages, msg)
	return d.err
}

func TestDefaultTemplates(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render(string(KindAccountApproved), TemplateData{
		"Name":     "Dana",
		"Email":    "dana@example.com",
		"Password": "Abc123xyz789",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Dana")
	assert.Contains(t, html, "Abc123xyz789")

	html, err = tm.Render(string(KindAccountRejected), TemplateData{"Name": "<b>Avi</b>"})
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;b&gt;Avi&lt;/b&gt;")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestDeliverer(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	t.Run("renders and sends", func(t *testing.T) {
		provider := &fakeProvider{}
		d := NewDeliverer(provider, tm)

		err := d.Deliver(context.Background(), Message{
			Kind:    KindAccountRejected,
			To:      "avi@example.com",
			Subject: "Registration",
			Data:    TemplateData{"Name": "Avi"},
		})
		require.NoError(t, err)
		require.Len(t, provider.sent, 1)
		assert.Equal(t, []string{"avi@example.com"}, provider.sent[0].To)
		assert.Equal(t, "Registration", provider.sent[0].Subject)
		assert.Contains(t, provider.sent[0].HTMLBody, "Avi")
	})

	t.Run("provider failure is returned", func(t *testing.T) {
		d := NewDeliverer(&fakeProvider{err: errors.New("relay down")}, tm)
		err := d.Deliver(context.Background(), Message{Kind: KindAccountRejected, To: "x@example.com"})
		assert.ErrorContains(t, err, "relay down")
	})

	t.Run("unknown kind", func(t *testing.T) {
		d := NewDeliverer(&fakeProvider{}, tm)
		err := d.Deliver(context.Background(), Message{Kind: "newsletter", To: "x@example.com"})
		assert.Error(t, err)
	})
}

func TestAsyncDispatcher(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)
	provider := &fakeProvider{}
	d := NewAsyncDispatcher(NewDeliverer(provider, tm))

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Dispatch(context.Background(), Message{
			Kind: KindAccountRejected,
			To:   "family@example.com",
			Data: TemplateData{"Name": "Cohen"},
		}))
	}
	d.Wait()

	provider.mu.Lock()
	defer provider.mu.Unlock()
	assert.Len(t, provider.sent, 3)
}

func TestNotifier(t *testing.T) {
	t.Run("approved carries password", func(t *testing.T) {
		rec := &recordingDispatcher{}
		NewNotifier(rec).NotifyApproved(context.Background(), "dana@example.com", "Dana Levi", "secret123456")

		require.Len(t, rec.messages, 1)
		msg := rec.messages[0]
		assert.Equal(t, KindAccountApproved, msg.Kind)
		assert.Equal(t, "dana@example.com", msg.To)
		assert.Equal(t, "secret123456", msg.Data["Password"])
	})

	t.Run("dispatch error is swallowed", func(t *testing.T) {
		rec := &recordingDispatcher{err: errors.New("redis down")}
		assert.NotPanics(t, func() {
			NewNotifier(rec).NotifyRejected(context.Background(), "avi@example.com", "Avi")
		})
		assert.Len(t, rec.messages, 1)
	})

	t.Run("empty recipient is skipped", func(t *testing.T) {
		rec := &recordingDispatcher{}
		NewNotifier(rec).NotifyRejected(context.Background(), "", "Avi")
		assert.Empty(t, rec.messages)
	})
}

func TestSMTPProviderValidate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Port: 587})
	err := p.Send(context.Background(), &Email{To: []string{"a@example.com"}})
	assert.ErrorContains(t, err, "smtp host is required")
}
