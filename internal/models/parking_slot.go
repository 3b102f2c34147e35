package models

// ParkingSlot flips to unavailable exactly when a request referencing it is approved.
// Nothing releases it automatically; only an admin slot update can bring it back.
type ParkingSlot struct {
	BaseModel
	SlotNumber  string      `gorm:"uniqueIndex;not null" json:"slot_number"`
	Size        VehicleSize `gorm:"type:varchar(20);not null" json:"size"`
	VehicleType VehicleType `gorm:"type:varchar(20);not null" json:"vehicle_type"`
	Location    string      `gorm:"not null" json:"location"`
	Status      SlotStatus  `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
}
