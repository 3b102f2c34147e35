package email

// Provider is the outbound mail interface. Approval and rejection mail is best-effort
// for callers; OTP mail during registration is not.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendOtp delivers the one-time verification code.
	SendOtp(to, otpCode string, ttlMinutes int) error

	// SendApproval notifies the requester that a slot was assigned.
	SendApproval(to, plateNumber, slotNumber, location string) error

	// SendRejection notifies the requester that the request was declined.
	SendRejection(to, plateNumber, location, reason string) error
}

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
