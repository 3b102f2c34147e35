package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Built-in message bodies. Subjects live with the senders in smtp_provider.go.
const (
	otpTemplate = `<p>Your OTP code for account verification is <strong>{{.OtpCode}}</strong>.</p>` +
		`<p>It is valid for {{.TTLMinutes}} minutes.</p>`

	approvalTemplate = `<p>Your parking slot request for vehicle <strong>{{.PlateNumber}}</strong> has been approved.</p>` +
		`<p>Assigned slot: <strong>{{.SlotNumber}}</strong>.</p>` +
		`<p>Located in the: <strong>{{.Location}}</strong> of the parking.</p>`

	rejectionTemplate = `<p>Your parking slot request for vehicle <strong>{{.PlateNumber}}</strong> has been rejected.</p>` +
		`<p>The slot considered was located in the: <strong>{{.Location}}</strong> of the parking.</p>` +
		`<p>Reason: <strong>{{.Reason}}</strong>.</p>`
)

// TemplateManager implements TemplateRenderer over html/template.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager creates a manager preloaded with the built-in templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	builtin := map[string]string{
		"otp":       otpTemplate,
		"approval":  approvalTemplate,
		"rejection": rejectionTemplate,
	}
	for name, body := range builtin {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render executes the named template.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate registers or replaces a template.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
