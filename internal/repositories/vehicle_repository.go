package repositories

import (
	"errors"

	"parkhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrPlateAlreadyExists = errors.New("plate number already exists")
)

// VehicleFilter narrows and pages the vehicle listing. An empty OwnerID means no
// ownership restriction (admin view).
type VehicleFilter struct {
	OwnerID  string
	Search   string
	Page     int
	PageSize int
}

// VehicleWithApproval is a listing row extended with the status of an approved slot
// request for the vehicle, if any.
type VehicleWithApproval struct {
	models.Vehicle
	ApprovalStatus *string `json:"approval_status"`
}

type VehicleRepository interface {
	Create(db *gorm.DB, vehicle *models.Vehicle) error
	FindByID(db *gorm.DB, id string) (*models.Vehicle, error)
	// FindOwned returns the vehicle only when it belongs to the given user.
	FindOwned(db *gorm.DB, id, ownerID string) (*models.Vehicle, error)
	FindWithFilter(db *gorm.DB, filter VehicleFilter) ([]VehicleWithApproval, int64, error)
	Update(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error
	// Delete removes the vehicle; with a non-empty ownerID the delete is scoped to it.
	Delete(db *gorm.DB, id, ownerID string) error
}

type VehicleRepositoryImpl struct{}

func NewVehicleRepository() VehicleRepository {
	return &VehicleRepositoryImpl{}
}

func (r *VehicleRepositoryImpl) Create(db *gorm.DB, vehicle *models.Vehicle) error {
	if err := db.Create(vehicle).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrPlateAlreadyExists
		}
		return err
	}
	return nil
}

func (r *VehicleRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := db.First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepositoryImpl) FindOwned(db *gorm.DB, id, ownerID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := db.First(&vehicle, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepositoryImpl) FindWithFilter(db *gorm.DB, filter VehicleFilter) ([]VehicleWithApproval, int64, error) {
	query := db.Model(&models.Vehicle{})

	if filter.OwnerID != "" {
		query = query.Where("user_id = ?", filter.OwnerID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(plate_number LIKE ? OR vehicle_type LIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []VehicleWithApproval
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Select("vehicles.*, (?) AS approval_status",
			db.Model(&models.SlotRequest{}).
				Select("request_status").
				Where("slot_requests.vehicle_id = vehicles.id AND slot_requests.request_status = ?", models.RequestStatusApproved).
				Limit(1)).
		Order("created_at").Offset(offset).Limit(filter.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *VehicleRepositoryImpl) Update(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error {
	result := db.Model(&models.Vehicle{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return ErrPlateAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepositoryImpl) Delete(db *gorm.DB, id, ownerID string) error {
	query := db.Where("id = ?", id)
	if ownerID != "" {
		query = query.Where("user_id = ?", ownerID)
	}

	result := query.Delete(&models.Vehicle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
