package dto

import (
	"time"

	"parkhub_backend/internal/models"
)

type CreateSlotRequestRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required,uuid4"`
}

type UpdateSlotRequestRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required,uuid4"`
}

type RejectSlotRequestRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// EmailStatus reports the best-effort notification outcome on approve/reject.
type EmailStatus string

const (
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)

type SlotRequestResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	VehicleID     string               `json:"vehicle_id"`
	PlateNumber   string               `json:"plate_number,omitempty"`
	VehicleType   models.VehicleType   `json:"vehicle_type,omitempty"`
	RequestStatus models.RequestStatus `json:"request_status"`
	SlotID        *string              `json:"slot_id,omitempty"`
	SlotNumber    string               `json:"slot_number,omitempty"`
	ApprovedAt    *time.Time           `json:"approved_at,omitempty"`
	RejectReason  string               `json:"reject_reason,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func NewSlotRequestResponse(request *models.SlotRequest) SlotRequestResponse {
	resp := SlotRequestResponse{
		ID:            request.ID,
		UserID:        request.UserID,
		VehicleID:     request.VehicleID,
		RequestStatus: request.RequestStatus,
		SlotID:        request.SlotID,
		SlotNumber:    request.SlotNumber,
		ApprovedAt:    request.ApprovedAt,
		RejectReason:  request.RejectReason,
		CreatedAt:     request.CreatedAt,
	}
	if request.Vehicle != nil {
		resp.PlateNumber = request.Vehicle.PlateNumber
		resp.VehicleType = request.Vehicle.VehicleType
	}
	return resp
}

type ApproveResponse struct {
	Request     SlotRequestResponse `json:"request"`
	Slot        SlotResponse        `json:"slot"`
	EmailStatus EmailStatus         `json:"emailStatus"`
}

type RejectResponse struct {
	Request     SlotRequestResponse `json:"request"`
	EmailStatus EmailStatus         `json:"emailStatus"`
}
