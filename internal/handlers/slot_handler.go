package handlers

import (
	"net/http"

	"parkhub_backend/internal/middleware"
	"parkhub_backend/internal/services"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	BaseHandler
	slotService services.SlotService
}

func NewSlotHandler(base BaseHandler, slotService services.SlotService) *SlotHandler {
	return &SlotHandler{BaseHandler: base, slotService: slotService}
}

func (h *SlotHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("/slots", h.List)
	authed.GET("/slots/:id", h.Get)
	admin.POST("/slots", h.BulkCreate)
	admin.PUT("/slots/:id", h.Update)
	admin.DELETE("/slots/:id", h.Delete)
}

// BulkCreate godoc
// @Summary Create parking slots in bulk
// @Description Rejects the whole batch when any slot number is already taken.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkCreateSlotsRequest true "Slot definitions"
// @Success 201 {array} dto.SlotResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /slots [post]
func (h *SlotHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateSlotsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.slotService.BulkCreate(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List parking slots
// @Description Regular users only see available slots, admins see all.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by slot number or vehicle type"
// @Success 200 {object} dto.ListResponse[dto.SlotResponse]
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	query, ok := h.BindPagination(c)
	if !ok {
		return
	}

	resp, err := h.slotService.List(h.GetDB(c), middleware.GetUserID(c), middleware.IsAdmin(c), query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a parking slot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} dto.SlotResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	resp, err := h.slotService.Get(h.GetDB(c), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a parking slot
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body dto.UpdateSlotRequest true "Slot changes"
// @Success 200 {object} dto.SlotResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /slots/{id} [put]
func (h *SlotHandler) Update(c *gin.Context) {
	var req dto.UpdateSlotRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.slotService.Update(h.GetDB(c), middleware.GetUserID(c), c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a parking slot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	if err := h.slotService.Delete(h.GetDB(c), middleware.GetUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Parking slot deleted"})
}
