package models

import "gorm.io/datatypes"

type Vehicle struct {
	BaseModel
	UserID          string         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	PlateNumber     string         `gorm:"uniqueIndex;not null" json:"plate_number"`
	VehicleType     VehicleType    `gorm:"type:varchar(20);not null" json:"vehicle_type"`
	Size            VehicleSize    `gorm:"type:varchar(20);not null" json:"size"`
	OtherAttributes datatypes.JSON `json:"other_attributes,omitempty"`
}
