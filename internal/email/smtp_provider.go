package email

import (
	"fmt"

	"parkhub_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	cfg      *config.Config
	renderer TemplateRenderer
}

// NewSMTPProvider builds the provider with the built-in templates.
func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Email.SMTPPort <= 0 || cfg.Email.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.Email.SMTPPort)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPProvider{
		cfg:      cfg,
		renderer: tm,
	}, nil
}

// Send delivers one message over SMTP.
func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.cfg.Email.FromEmail
	}
	m.SetAddressHeader("From", from, p.cfg.Email.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
		if email.HTMLBody != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		}
	} else {
		m.SetBody("text/html", email.HTMLBody)
	}

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendOtp(to, otpCode string, ttlMinutes int) error {
	data := TemplateData{OtpCode: otpCode, TTLMinutes: ttlMinutes}
	htmlBody, err := p.renderer.Render("otp", data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Your OTP for Account Verification",
		Body:     fmt.Sprintf("Your OTP code for account verification is %s. It is valid for %d minutes.", otpCode, ttlMinutes),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) SendApproval(to, plateNumber, slotNumber, location string) error {
	data := TemplateData{PlateNumber: plateNumber, SlotNumber: slotNumber, Location: location}
	htmlBody, err := p.renderer.Render("approval", data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Parking Slot Approval",
		Body: fmt.Sprintf("Your parking slot request for vehicle %s has been approved. Assigned slot: %s. Located in the: %s of the parking.",
			plateNumber, slotNumber, location),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) SendRejection(to, plateNumber, location, reason string) error {
	data := TemplateData{PlateNumber: plateNumber, Location: location, Reason: reason}
	htmlBody, err := p.renderer.Render("rejection", data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Parking Slot Request Rejected",
		Body: fmt.Sprintf("Your parking slot request for vehicle %s has been rejected. The slot considered was located in the: %s of the parking. Reason: %s.",
			plateNumber, location, reason),
		HTMLBody: htmlBody,
	})
}
