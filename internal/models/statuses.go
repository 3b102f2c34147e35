package models

type UserRole string
type VehicleType string
type VehicleSize string
type SlotStatus string
type RequestStatus string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"

	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeVan        VehicleType = "van"

	VehicleSizeSmall  VehicleSize = "small"
	VehicleSizeMedium VehicleSize = "medium"
	VehicleSizeLarge  VehicleSize = "large"

	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusUnavailable SlotStatus = "unavailable"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)
