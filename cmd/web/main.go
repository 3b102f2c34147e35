package main

import (
	"parkhub_backend/internal/app"
	"parkhub_backend/internal/logger"
)

// @title Vehicle Parking Management API
// @version 1.0
// @description Role-based backend for vehicle registration, parking slot inventory and slot request workflows.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited with error", "error", err)
	}
}
