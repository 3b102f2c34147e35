package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOtpExpired(t *testing.T) {
	now := time.Now()
	otp := &Otp{ExpiresAt: now.Add(5 * time.Minute)}

	assert.False(t, otp.Expired(now))
	assert.False(t, otp.Expired(now.Add(5*time.Minute)))
	assert.True(t, otp.Expired(now.Add(5*time.Minute+time.Second)))
}

func TestSlotRequestTerminal(t *testing.T) {
	assert.False(t, (&SlotRequest{RequestStatus: RequestStatusPending}).Terminal())
	assert.True(t, (&SlotRequest{RequestStatus: RequestStatusApproved}).Terminal())
	assert.True(t, (&SlotRequest{RequestStatus: RequestStatusRejected}).Terminal())
}
