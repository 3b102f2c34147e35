package models

import "time"

// Otp is a single-use verification code. Resending supersedes (deletes) all previous
// codes for the user; a code is valid only while unexpired and unused.
type Otp struct {
	BaseModel
	UserID     string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Code       string    `gorm:"type:varchar(6);not null" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
}

// Expired reports whether the code is past its lifetime at the given instant.
func (o *Otp) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
