package handlers

import (
	"net/http"

	"parkhub_backend/internal/middleware"
	"parkhub_backend/internal/services"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{BaseHandler: base, requestService: requestService}
}

func (h *RequestHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.POST("/requests", h.Create)
	authed.GET("/requests", h.List)
	authed.PUT("/requests/:id", h.Update)
	authed.DELETE("/requests/:id", h.Delete)
	admin.PUT("/requests/:id/approve", h.Approve)
	admin.PUT("/requests/:id/reject", h.Reject)
}

// Create godoc
// @Summary Request a parking slot for an owned vehicle
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSlotRequestRequest true "Vehicle reference"
// @Success 201 {object} dto.SlotRequestResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSlotRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.requestService.Create(h.GetDB(c), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List slot requests
// @Description Regular users see their own requests, admins see all.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by plate number or status"
// @Success 200 {object} dto.ListResponse[dto.SlotRequestResponse]
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	query, ok := h.BindPagination(c)
	if !ok {
		return
	}

	resp, err := h.requestService.List(h.GetDB(c), userID, middleware.IsAdmin(c), query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Change the vehicle on a pending request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body dto.UpdateSlotRequestRequest true "New vehicle reference"
// @Success 200 {object} dto.SlotRequestResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /requests/{id} [put]
func (h *RequestHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSlotRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.requestService.Update(h.GetDB(c), c.Param("id"), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Cancel a pending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /requests/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.requestService.Delete(h.GetDB(c), c.Param("id"), userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Request deleted"})
}

// Approve godoc
// @Summary Approve a pending request
// @Description Reserves the first compatible available slot and notifies the owner.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.ApproveResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /requests/{id}/approve [put]
func (h *RequestHandler) Approve(c *gin.Context) {
	resp, err := h.requestService.Approve(h.GetDB(c), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reject godoc
// @Summary Reject a pending request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body dto.RejectSlotRequestRequest true "Rejection reason"
// @Success 200 {object} dto.RejectResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /requests/{id}/reject [put]
func (h *RequestHandler) Reject(c *gin.Context) {
	var req dto.RejectSlotRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.requestService.Reject(h.GetDB(c), middleware.GetUserID(c), c.Param("id"), req.Reason)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
