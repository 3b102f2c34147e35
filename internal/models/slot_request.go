package models

import "time"

// SlotRequest moves pending -> approved | rejected; both are terminal. While pending
// it is editable and deletable by its owner, afterwards immutable to the user.
type SlotRequest struct {
	BaseModel
	UserID        string        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	VehicleID     string        `gorm:"type:varchar(36);not null;index" json:"vehicle_id"`
	RequestStatus RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"request_status"`
	SlotID        *string       `gorm:"type:varchar(36)" json:"slot_id,omitempty"`
	SlotNumber    string        `json:"slot_number,omitempty"`
	ApprovedAt    *time.Time    `json:"approved_at,omitempty"`
	RejectReason  string        `json:"reject_reason,omitempty"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"-"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
}

// Terminal reports whether the request can no longer change state.
func (r *SlotRequest) Terminal() bool {
	return r.RequestStatus != RequestStatusPending
}
