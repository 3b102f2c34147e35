package dto

import (
	"time"

	"parkhub_backend/internal/models"
)

type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuditLogResponse(log *models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		CreatedAt: log.CreatedAt,
	}
}
