package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the services.
const (
	TemplateDecoratorApproved = "decorator_approved"
	TemplatePaymentReceipt    = "payment_receipt"
)

var builtinTemplates = map[string]string{
	TemplateDecoratorApproved: `
<h2>Welcome aboard, {{.Name}}!</h2>
<p>Your application to join Eventora as a decorator has been approved.</p>
<p>Specialty on file: <strong>{{.Specialty}}</strong></p>
<p>Sign in to see bookings assigned to you.</p>`,

	TemplatePaymentReceipt: `
<h2>Payment received</h2>
<p>Hi {{.Name}}, we have received your payment for <strong>{{.ServiceName}}</strong>.</p>
<p>Amount: {{.Amount}} {{.Currency}}</p>
<p>Your booking is confirmed and will be assigned to a decorator shortly.</p>`,
}

// TemplateManager keeps parsed HTML templates, safe for concurrent use.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", templateName, err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
