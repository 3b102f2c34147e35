package handlers

import (
	"net/http"

	"parkhub_backend/internal/middleware"
	"parkhub_backend/internal/services"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	BaseHandler
	vehicleService services.VehicleService
}

func NewVehicleHandler(base BaseHandler, vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{BaseHandler: base, vehicleService: vehicleService}
}

func (h *VehicleHandler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.POST("/vehicles", h.Create)
	authed.GET("/vehicles", h.List)
	authed.GET("/vehicles/:id", h.Get)
	authed.PUT("/vehicles/:id", h.Update)
	authed.DELETE("/vehicles/:id", h.Delete)
}

// Create godoc
// @Summary Register a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVehicleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.vehicleService.Create(h.GetDB(c), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List vehicles
// @Description Regular users see their own vehicles, admins see all.
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by plate number or type"
// @Success 200 {object} dto.ListResponse[dto.VehicleResponse]
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	query, ok := h.BindPagination(c)
	if !ok {
		return
	}

	resp, err := h.vehicleService.List(h.GetDB(c), userID, middleware.IsAdmin(c), query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.vehicleService.Get(h.GetDB(c), c.Param("id"), userID, middleware.IsAdmin(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update an owned vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Vehicle changes"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVehicleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.vehicleService.Update(h.GetDB(c), c.Param("id"), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a vehicle
// @Description Regular users can only delete their own vehicles.
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(h.GetDB(c), c.Param("id"), userID, middleware.IsAdmin(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle deleted"})
}
