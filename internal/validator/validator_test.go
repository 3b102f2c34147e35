package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vehiclePayload struct {
	PlateNumber string `json:"plate_number" validate:"required,min=2"`
	VehicleType string `json:"vehicle_type" validate:"required,is-vehicle-type"`
	Size        string `json:"size" validate:"required,is-vehicle-size"`
}

func TestValidateAcceptsValidEnums(t *testing.T) {
	v := New()
	err := v.Validate(vehiclePayload{
		PlateNumber: "ABC-123",
		VehicleType: "car",
		Size:        "medium",
	})
	assert.NoError(t, err)
}

func TestValidateRejectsInvalidEnums(t *testing.T) {
	v := New()
	err := v.Validate(vehiclePayload{
		PlateNumber: "ABC-123",
		VehicleType: "bicycle",
		Size:        "huge",
	})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)

	// Field names come from the json tags.
	assert.Contains(t, ve.Errors, "vehicle_type")
	assert.Contains(t, ve.Errors, "size")
	assert.NotContains(t, ve.Errors, "plate_number")
}

func TestValidateReportsMissingRequired(t *testing.T) {
	v := New()
	err := v.Validate(vehiclePayload{})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", ve.Errors["plate_number"])
}

func TestSlotAndRequestStatusRules(t *testing.T) {
	type statusPayload struct {
		SlotStatus    string `json:"slot_status" validate:"omitempty,is-slot-status"`
		RequestStatus string `json:"request_status" validate:"omitempty,is-request-status"`
		Role          string `json:"role" validate:"omitempty,is-user-role"`
	}

	v := New()
	assert.NoError(t, v.Validate(statusPayload{
		SlotStatus:    "available",
		RequestStatus: "pending",
		Role:          "admin",
	}))
	assert.Error(t, v.Validate(statusPayload{SlotStatus: "occupied"}))
	assert.Error(t, v.Validate(statusPayload{RequestStatus: "expired"}))
	assert.Error(t, v.Validate(statusPayload{Role: "superuser"}))
}
