package handlers

import "parkhub_backend/internal/services"

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Vehicle *VehicleHandler
	Slot    *SlotHandler
	Request *RequestHandler
	Log     *LogHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Auth:    NewAuthHandler(base, svc.Auth),
		User:    NewUserHandler(base, svc.User),
		Vehicle: NewVehicleHandler(base, svc.Vehicle),
		Slot:    NewSlotHandler(base, svc.Slot),
		Request: NewRequestHandler(base, svc.Request),
		Log:     NewLogHandler(base, svc.Audit),
	}
}
