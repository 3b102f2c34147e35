package repositories

import (
	"parkhub_backend/internal/models"

	"gorm.io/gorm"
)

// LogFilter pages the audit trail.
type LogFilter struct {
	Search   string
	Page     int
	PageSize int
}

type LogRepository interface {
	Create(db *gorm.DB, log *models.AuditLog) error
	FindWithFilter(db *gorm.DB, filter LogFilter) ([]models.AuditLog, int64, error)
}

type LogRepositoryImpl struct{}

func NewLogRepository() LogRepository {
	return &LogRepositoryImpl{}
}

func (r *LogRepositoryImpl) Create(db *gorm.DB, log *models.AuditLog) error {
	return db.Create(log).Error
}

func (r *LogRepositoryImpl) FindWithFilter(db *gorm.DB, filter LogFilter) ([]models.AuditLog, int64, error) {
	query := db.Model(&models.AuditLog{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(action LIKE ? OR user_id LIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
