package helpers

import (
	"errors"
	"sync"

	"parkhub_backend/internal/email"
)

// MockMailer records outbound mail instead of sending it. FailNext makes the next
// delivery attempt return an error, for exercising best-effort paths.
type MockMailer struct {
	mu                sync.Mutex
	OtpCodes          map[string]string
	Approvals         []string
	Rejection         []string
	LastRejectionArea string
	failNext          bool
}

func NewMockMailer() *MockMailer {
	return &MockMailer{OtpCodes: make(map[string]string)}
}

func (m *MockMailer) FailNext() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = true
}

func (m *MockMailer) takeFailure() error {
	if m.failNext {
		m.failNext = false
		return errors.New("smtp unavailable")
	}
	return nil
}

func (m *MockMailer) Send(e *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.takeFailure()
}

func (m *MockMailer) SendOtp(to, otpCode string, ttlMinutes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	m.OtpCodes[to] = otpCode
	return nil
}

func (m *MockMailer) SendApproval(to, plateNumber, slotNumber, location string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	m.Approvals = append(m.Approvals, to)
	return nil
}

func (m *MockMailer) SendRejection(to, plateNumber, location, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	m.Rejection = append(m.Rejection, to)
	m.LastRejectionArea = location
	return nil
}

// RejectionLocation returns the location carried by the most recent rejection mail.
func (m *MockMailer) RejectionLocation() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LastRejectionArea
}

// LastOtp returns the most recent OTP mailed to the address.
func (m *MockMailer) LastOtp(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.OtpCodes[to]
}
