package handlers

import (
	"errors"

	"parkhub_backend/internal/middleware"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/internal/validator"
	"parkhub_backend/pkg/apperrors"
	"parkhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs: request validation and the
// per-request DB handle.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() BaseHandler {
	return BaseHandler{validator: validator.New()}
}

// GetDB returns the request-scoped DB handle placed by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, _ := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
	return db
}

// BindAndValidateJSON binds the JSON body into obj and validates it. On failure it
// writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindPagination binds the common listing query parameters.
func (h *BaseHandler) BindPagination(c *gin.Context) (dto.PaginationQuery, bool) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return query, false
	}
	if !h.validate(c, &query) {
		return query, false
	}
	return query, true
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, err)
		}
		return false
	}
	return true
}

// CurrentUserID returns the authenticated user ID, writing a 401 when absent.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}
