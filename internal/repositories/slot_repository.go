package repositories

import (
	"errors"

	"parkhub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSlotNotFound     = errors.New("parking slot not found")
	ErrSlotNumberExists = errors.New("slot number already exists")
	ErrNoCompatibleSlot = errors.New("no compatible available slot")
)

// SlotFilter narrows and pages the slot listing. OnlyAvailable hides occupied slots
// from non-admin callers.
type SlotFilter struct {
	OnlyAvailable bool
	Search        string
	Page          int
	PageSize      int
}

type SlotRepository interface {
	BulkCreate(db *gorm.DB, slots []models.ParkingSlot) error
	// FindExistingNumbers returns the subset of numbers already present in storage.
	FindExistingNumbers(db *gorm.DB, numbers []string) ([]string, error)
	FindByID(db *gorm.DB, id string) (*models.ParkingSlot, error)
	FindWithFilter(db *gorm.DB, filter SlotFilter) ([]models.ParkingSlot, int64, error)
	// FindFirstCompatibleForUpdate locks and returns the first available slot matching
	// the vehicle's type and size; first match wins, no ranking.
	FindFirstCompatibleForUpdate(tx *gorm.DB, vehicleType models.VehicleType, size models.VehicleSize) (*models.ParkingSlot, error)
	// FindLocationByCompatibility returns the location of any slot matching type+size,
	// regardless of availability. Used for rejection notifications.
	FindLocationByCompatibility(db *gorm.DB, vehicleType models.VehicleType, size models.VehicleSize) (string, error)
	MarkUnavailable(tx *gorm.DB, slotID string) error
	Update(db *gorm.DB, id string, updates map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type SlotRepositoryImpl struct{}

func NewSlotRepository() SlotRepository {
	return &SlotRepositoryImpl{}
}

func (r *SlotRepositoryImpl) BulkCreate(db *gorm.DB, slots []models.ParkingSlot) error {
	if err := db.Create(&slots).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrSlotNumberExists
		}
		return err
	}
	return nil
}

func (r *SlotRepositoryImpl) FindExistingNumbers(db *gorm.DB, numbers []string) ([]string, error) {
	var existing []string
	err := db.Model(&models.ParkingSlot{}).
		Where("slot_number IN ?", numbers).
		Pluck("slot_number", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *SlotRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ParkingSlot, error) {
	var slot models.ParkingSlot
	err := db.First(&slot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepositoryImpl) FindWithFilter(db *gorm.DB, filter SlotFilter) ([]models.ParkingSlot, int64, error) {
	query := db.Model(&models.ParkingSlot{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(slot_number LIKE ? OR vehicle_type LIKE ?)", like, like)
	}
	if filter.OnlyAvailable {
		query = query.Where("status = ?", models.SlotStatusAvailable)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var slots []models.ParkingSlot
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("slot_number").Offset(offset).Limit(filter.PageSize).Find(&slots).Error
	if err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

func (r *SlotRepositoryImpl) FindFirstCompatibleForUpdate(tx *gorm.DB, vehicleType models.VehicleType, size models.VehicleSize) (*models.ParkingSlot, error) {
	var slot models.ParkingSlot
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vehicle_type = ? AND size = ? AND status = ?", vehicleType, size, models.SlotStatusAvailable).
		Order("slot_number").
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCompatibleSlot
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepositoryImpl) FindLocationByCompatibility(db *gorm.DB, vehicleType models.VehicleType, size models.VehicleSize) (string, error) {
	var slot models.ParkingSlot
	err := db.Select("location").
		Where("vehicle_type = ? AND size = ?", vehicleType, size).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSlotNotFound
		}
		return "", err
	}
	return slot.Location, nil
}

func (r *SlotRepositoryImpl) MarkUnavailable(tx *gorm.DB, slotID string) error {
	result := tx.Model(&models.ParkingSlot{}).
		Where("id = ?", slotID).
		Update("status", models.SlotStatusUnavailable)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *SlotRepositoryImpl) Update(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.ParkingSlot{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return ErrSlotNumberExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *SlotRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.ParkingSlot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}
