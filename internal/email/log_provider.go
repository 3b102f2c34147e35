package email

import "parkhub_backend/internal/logger"

// LogProvider writes outbound mail to the log instead of sending it. Used when SMTP
// is not configured and as the default in tests.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("email (log only)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *LogProvider) SendOtp(to, otpCode string, ttlMinutes int) error {
	logger.Info("otp email (log only)", "to", to, "code", otpCode, "ttl_minutes", ttlMinutes)
	return nil
}

func (p *LogProvider) SendApproval(to, plateNumber, slotNumber, location string) error {
	logger.Info("approval email (log only)", "to", to, "plate", plateNumber, "slot", slotNumber, "location", location)
	return nil
}

func (p *LogProvider) SendRejection(to, plateNumber, location, reason string) error {
	logger.Info("rejection email (log only)", "to", to, "plate", plateNumber, "reason", reason)
	return nil
}
