package dto

import (
	"time"

	"parkhub_backend/internal/models"
)

type SlotDefinition struct {
	SlotNumber  string `json:"slot_number" validate:"required,min=1,max=20"`
	Size        string `json:"size" validate:"required,is-vehicle-size"`
	VehicleType string `json:"vehicle_type" validate:"required,is-vehicle-type"`
	Location    string `json:"location" validate:"required,min=1,max=100"`
}

type BulkCreateSlotsRequest struct {
	Slots []SlotDefinition `json:"slots" validate:"required,min=1,max=100,dive"`
}

type UpdateSlotRequest struct {
	SlotNumber  *string `json:"slot_number" validate:"omitempty,min=1,max=20"`
	Size        *string `json:"size" validate:"omitempty,is-vehicle-size"`
	VehicleType *string `json:"vehicle_type" validate:"omitempty,is-vehicle-type"`
	Location    *string `json:"location" validate:"omitempty,min=1,max=100"`
	Status      *string `json:"status" validate:"omitempty,is-slot-status"`
}

type SlotResponse struct {
	ID          string             `json:"id"`
	SlotNumber  string             `json:"slot_number"`
	Size        models.VehicleSize `json:"size"`
	VehicleType models.VehicleType `json:"vehicle_type"`
	Location    string             `json:"location"`
	Status      models.SlotStatus  `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

func NewSlotResponse(slot *models.ParkingSlot) SlotResponse {
	return SlotResponse{
		ID:          slot.ID,
		SlotNumber:  slot.SlotNumber,
		Size:        slot.Size,
		VehicleType: slot.VehicleType,
		Location:    slot.Location,
		Status:      slot.Status,
		CreatedAt:   slot.CreatedAt,
	}
}
