package models

// AuditLog is append-only; rows are written on nearly every mutating and viewing
// operation and listed newest first.
type AuditLog struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Action string `gorm:"not null" json:"action"`
}
