package repositories

import (
	"errors"
	"time"

	"parkhub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRequestNotFound = errors.New("slot request not found")
	// ErrRequestNotPending signals a guarded update that matched no pending row.
	ErrRequestNotPending = errors.New("slot request not found or not pending")
)

// RequestFilter narrows and pages the request listing. An empty OwnerID means no
// ownership restriction (admin view).
type RequestFilter struct {
	OwnerID  string
	Search   string
	Page     int
	PageSize int
}

type RequestRepository interface {
	Create(db *gorm.DB, request *models.SlotRequest) error
	FindByID(db *gorm.DB, id string) (*models.SlotRequest, error)
	// FindPendingForUpdate locks the pending request row and loads its vehicle and
	// owner. Returns ErrRequestNotPending when the request is absent or terminal.
	FindPendingForUpdate(tx *gorm.DB, id string) (*models.SlotRequest, error)
	FindWithFilter(db *gorm.DB, filter RequestFilter) ([]models.SlotRequest, int64, error)
	// UpdateVehiclePending swaps the vehicle on the owner's still-pending request.
	UpdateVehiclePending(db *gorm.DB, id, ownerID, vehicleID string) error
	// DeletePending removes the owner's still-pending request.
	DeletePending(db *gorm.DB, id, ownerID string) error
	// MarkApproved finalizes the request; the still-pending guard makes the terminal
	// states write-once.
	MarkApproved(tx *gorm.DB, id, slotID, slotNumber string, approvedAt time.Time) error
	MarkRejected(db *gorm.DB, id, reason string) error
}

type RequestRepositoryImpl struct{}

func NewRequestRepository() RequestRepository {
	return &RequestRepositoryImpl{}
}

func (r *RequestRepositoryImpl) Create(db *gorm.DB, request *models.SlotRequest) error {
	return db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.SlotRequest, error) {
	var request models.SlotRequest
	err := db.Preload("Vehicle").First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindPendingForUpdate(tx *gorm.DB, id string) (*models.SlotRequest, error) {
	var request models.SlotRequest
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, "id = ? AND request_status = ?", id, models.RequestStatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotPending
		}
		return nil, err
	}

	// Loaded separately so the row lock stays on slot_requests only.
	if err := tx.First(&request.Vehicle, "id = ?", request.VehicleID).Error; err != nil {
		return nil, err
	}
	if err := tx.First(&request.User, "id = ?", request.UserID).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

func (r *RequestRepositoryImpl) FindWithFilter(db *gorm.DB, filter RequestFilter) ([]models.SlotRequest, int64, error) {
	query := db.Model(&models.SlotRequest{}).
		Joins("JOIN vehicles ON vehicles.id = slot_requests.vehicle_id")

	if filter.OwnerID != "" {
		query = query.Where("slot_requests.user_id = ?", filter.OwnerID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(vehicles.plate_number LIKE ? OR slot_requests.request_status LIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.SlotRequest
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Preload("Vehicle").
		Order("slot_requests.created_at").
		Offset(offset).Limit(filter.PageSize).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *RequestRepositoryImpl) UpdateVehiclePending(db *gorm.DB, id, ownerID, vehicleID string) error {
	result := db.Model(&models.SlotRequest{}).
		Where("id = ? AND user_id = ? AND request_status = ?", id, ownerID, models.RequestStatusPending).
		Update("vehicle_id", vehicleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

func (r *RequestRepositoryImpl) DeletePending(db *gorm.DB, id, ownerID string) error {
	result := db.Where("id = ? AND user_id = ? AND request_status = ?", id, ownerID, models.RequestStatusPending).
		Delete(&models.SlotRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

func (r *RequestRepositoryImpl) MarkApproved(tx *gorm.DB, id, slotID, slotNumber string, approvedAt time.Time) error {
	result := tx.Model(&models.SlotRequest{}).
		Where("id = ? AND request_status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"request_status": models.RequestStatusApproved,
			"slot_id":        slotID,
			"slot_number":    slotNumber,
			"approved_at":    approvedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

func (r *RequestRepositoryImpl) MarkRejected(db *gorm.DB, id, reason string) error {
	result := db.Model(&models.SlotRequest{}).
		Where("id = ? AND request_status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"request_status": models.RequestStatusRejected,
			"reject_reason":  reason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}
