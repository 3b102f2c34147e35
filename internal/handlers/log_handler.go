package handlers

import (
	"net/http"

	"parkhub_backend/internal/middleware"
	"parkhub_backend/internal/services"
	"parkhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	BaseHandler
	auditService services.AuditService
}

func NewLogHandler(base BaseHandler, auditService services.AuditService) *LogHandler {
	return &LogHandler{BaseHandler: base, auditService: auditService}
}

func (h *LogHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/logs", h.List)
}

// List godoc
// @Summary List audit log entries
// @Description Entries are returned newest first.
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by action or user ID"
// @Success 200 {object} dto.ListResponse[dto.AuditLogResponse]
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	query, ok := h.BindPagination(c)
	if !ok {
		return
	}

	resp, err := h.auditService.List(h.GetDB(c), middleware.GetUserID(c), query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
