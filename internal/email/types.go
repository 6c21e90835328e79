package email

// Email is a rendered message ready for a Provider.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the data passed to an email template.
type TemplateData map[string]interface{}

// Kind names a notification template.
type Kind string

const (
	KindAccountApproved Kind = "account_approved"
	KindAccountRejected Kind = "account_rejected"
)

// Message is a notification waiting to be rendered and sent. It is what goes
// onto the outbox queue, so it must stay JSON friendly.
type Message struct {
	Kind    Kind         `json:"kind"`
	To      string       `json:"to"`
	Subject string       `json:"subject"`
	Data    TemplateData `json:"data"`
}
