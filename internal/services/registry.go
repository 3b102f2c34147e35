package services

import (
	"parkhub_backend/internal/email"
	"parkhub_backend/internal/repositories"
)

// ServiceContainer wires repositories into services once at startup.
type ServiceContainer struct {
	Auth    AuthService
	User    UserService
	Vehicle VehicleService
	Slot    SlotService
	Request RequestService
	Audit   AuditService
}

func NewServiceContainer(mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	otpRepo := repositories.NewOtpRepository()
	vehicleRepo := repositories.NewVehicleRepository()
	slotRepo := repositories.NewSlotRepository()
	requestRepo := repositories.NewRequestRepository()
	logRepo := repositories.NewLogRepository()

	audit := NewAuditService(logRepo)

	return &ServiceContainer{
		Auth:    NewAuthService(userRepo, otpRepo, mailer, audit),
		User:    NewUserService(userRepo, audit),
		Vehicle: NewVehicleService(vehicleRepo, audit),
		Slot:    NewSlotService(slotRepo, audit),
		Request: NewRequestService(requestRepo, vehicleRepo, slotRepo, mailer, audit),
		Audit:   audit,
	}
}
