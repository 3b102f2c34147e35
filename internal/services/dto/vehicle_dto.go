package dto

import (
	"time"

	"parkhub_backend/internal/models"
	"parkhub_backend/internal/repositories"

	"gorm.io/datatypes"
)

type CreateVehicleRequest struct {
	PlateNumber     string         `json:"plate_number" validate:"required,min=2,max=20"`
	VehicleType     string         `json:"vehicle_type" validate:"required,is-vehicle-type"`
	Size            string         `json:"size" validate:"required,is-vehicle-size"`
	OtherAttributes datatypes.JSON `json:"other_attributes" validate:"omitempty"`
}

type UpdateVehicleRequest struct {
	PlateNumber     *string        `json:"plate_number" validate:"omitempty,min=2,max=20"`
	VehicleType     *string        `json:"vehicle_type" validate:"omitempty,is-vehicle-type"`
	Size            *string        `json:"size" validate:"omitempty,is-vehicle-size"`
	OtherAttributes datatypes.JSON `json:"other_attributes" validate:"omitempty"`
}

type VehicleResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	PlateNumber     string             `json:"plate_number"`
	VehicleType     models.VehicleType `json:"vehicle_type"`
	Size            models.VehicleSize `json:"size"`
	OtherAttributes datatypes.JSON     `json:"other_attributes,omitempty"`
	ApprovalStatus  *string            `json:"approval_status,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

func NewVehicleResponse(vehicle *models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              vehicle.ID,
		UserID:          vehicle.UserID,
		PlateNumber:     vehicle.PlateNumber,
		VehicleType:     vehicle.VehicleType,
		Size:            vehicle.Size,
		OtherAttributes: vehicle.OtherAttributes,
		CreatedAt:       vehicle.CreatedAt,
	}
}

func NewVehicleListItem(row repositories.VehicleWithApproval) VehicleResponse {
	resp := NewVehicleResponse(&row.Vehicle)
	resp.ApprovalStatus = row.ApprovalStatus
	return resp
}
