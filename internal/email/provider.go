package email

// Provider sends notification emails.
type Provider interface {
	Send(email *Email) error
	SendTemplate(to []string, subject, templateName string, data TemplateData) error
}

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name, templateStr string) error
}

// NoopProvider drops every message. Used when email is disabled and in tests.
type NoopProvider struct{}

func (NoopProvider) Send(*Email) error { return nil }

func (NoopProvider) SendTemplate([]string, string, string, TemplateData) error { return nil }
