package validator

import (
	"log"

	"parkhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-vehicle-type", validateVehicleType)
	mustRegister("is-vehicle-size", validateVehicleSize)
	mustRegister("is-slot-status", validateSlotStatus)
	mustRegister("is-request-status", validateRequestStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is the concern of 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleAdmin, models.UserRoleUser:
		return true
	}
	return false
}

func validateVehicleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.VehicleType(value) {
	case models.VehicleTypeCar, models.VehicleTypeMotorcycle, models.VehicleTypeTruck, models.VehicleTypeVan:
		return true
	}
	return false
}

func validateVehicleSize(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.VehicleSize(value) {
	case models.VehicleSizeSmall, models.VehicleSizeMedium, models.VehicleSizeLarge:
		return true
	}
	return false
}

func validateSlotStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SlotStatus(value) {
	case models.SlotStatusAvailable, models.SlotStatusUnavailable:
		return true
	}
	return false
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.RequestStatus(value) {
	case models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusRejected:
		return true
	}
	return false
}
