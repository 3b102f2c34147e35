package services

import (
	"parkhub_backend/internal/logger"
	"parkhub_backend/internal/models"
	"parkhub_backend/internal/repositories"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuditService interface {
	// Record appends an audit entry. A write failure is logged and swallowed so it
	// can never fail the operation being audited.
	Record(db *gorm.DB, userID, action string)
	List(db *gorm.DB, actorID string, query dto.PaginationQuery) (*dto.ListResponse[dto.AuditLogResponse], error)
}

type AuditServiceImpl struct {
	logRepo repositories.LogRepository
}

func NewAuditService(logRepo repositories.LogRepository) AuditService {
	return &AuditServiceImpl{logRepo: logRepo}
}

func (s *AuditServiceImpl) Record(db *gorm.DB, userID, action string) {
	entry := &models.AuditLog{UserID: userID, Action: action}
	if err := s.logRepo.Create(db, entry); err != nil {
		logger.Error("audit log write failed", "user_id", userID, "action", action, "error", err)
	}
}

func (s *AuditServiceImpl) List(db *gorm.DB, actorID string, query dto.PaginationQuery) (*dto.ListResponse[dto.AuditLogResponse], error) {
	query.Normalize()

	logs, total, err := s.logRepo.FindWithFilter(db, repositories.LogFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, dto.NewAuditLogResponse(&logs[i]))
	}

	// Recorded after the page is read so the viewing entry does not shift it.
	s.Record(db, actorID, "Viewed audit logs")
	return dto.NewListResponse(items, total, query.Page, query.Limit), nil
}
