package services

import (
	"errors"
	"fmt"

	"parkhub_backend/internal/models"
	"parkhub_backend/internal/repositories"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SlotService interface {
	// BulkCreate inserts a batch of slots. A duplicate slot number, in storage or
	// within the batch itself, rejects the whole batch.
	BulkCreate(db *gorm.DB, adminID string, req dto.BulkCreateSlotsRequest) ([]dto.SlotResponse, error)
	Get(db *gorm.DB, userID, id string) (*dto.SlotResponse, error)
	// List shows all slots to admins and only available ones to regular users.
	List(db *gorm.DB, userID string, isAdmin bool, query dto.PaginationQuery) (*dto.ListResponse[dto.SlotResponse], error)
	Update(db *gorm.DB, adminID, id string, req dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	Delete(db *gorm.DB, adminID, id string) error
}

type SlotServiceImpl struct {
	slotRepo repositories.SlotRepository
	audit    AuditService
}

func NewSlotService(slotRepo repositories.SlotRepository, audit AuditService) SlotService {
	return &SlotServiceImpl{slotRepo: slotRepo, audit: audit}
}

func (s *SlotServiceImpl) BulkCreate(db *gorm.DB, adminID string, req dto.BulkCreateSlotsRequest) ([]dto.SlotResponse, error) {
	numbers := make([]string, 0, len(req.Slots))
	seen := make(map[string]bool, len(req.Slots))
	for _, def := range req.Slots {
		if seen[def.SlotNumber] {
			return nil, apperrors.ErrAlreadyExists(nil,
				fmt.Sprintf("Duplicate slot number in request: %s", def.SlotNumber))
		}
		seen[def.SlotNumber] = true
		numbers = append(numbers, def.SlotNumber)
	}

	existing, err := s.slotRepo.FindExistingNumbers(db, numbers)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(existing) > 0 {
		return nil, apperrors.ErrAlreadyExists(nil, "Slot numbers already exist").
			WithDetails(map[string]interface{}{"slot_numbers": existing})
	}

	slots := make([]models.ParkingSlot, 0, len(req.Slots))
	for _, def := range req.Slots {
		slots = append(slots, models.ParkingSlot{
			SlotNumber:  def.SlotNumber,
			Size:        models.VehicleSize(def.Size),
			VehicleType: models.VehicleType(def.VehicleType),
			Location:    def.Location,
			Status:      models.SlotStatusAvailable,
		})
	}

	if err := s.slotRepo.BulkCreate(db, slots); err != nil {
		// A concurrent insert can still race past the pre-check.
		if errors.Is(err, repositories.ErrSlotNumberExists) {
			return nil, apperrors.ErrAlreadyExists(err, "Slot numbers already exist")
		}
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(db, adminID, fmt.Sprintf("Created %d parking slots", len(slots)))

	items := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		items = append(items, dto.NewSlotResponse(&slots[i]))
	}
	return items, nil
}

func (s *SlotServiceImpl) Get(db *gorm.DB, userID, id string) (*dto.SlotResponse, error) {
	resp, err := s.get(db, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(db, userID, "Viewed parking slot "+id)
	return resp, nil
}

func (s *SlotServiceImpl) get(db *gorm.DB, id string) (*dto.SlotResponse, error) {
	slot, err := s.slotRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return nil, apperrors.NewNotFoundError("parking_slot", "Parking slot not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewSlotResponse(slot)
	return &resp, nil
}

func (s *SlotServiceImpl) List(db *gorm.DB, userID string, isAdmin bool, query dto.PaginationQuery) (*dto.ListResponse[dto.SlotResponse], error) {
	query.Normalize()

	slots, total, err := s.slotRepo.FindWithFilter(db, repositories.SlotFilter{
		OnlyAvailable: !isAdmin,
		Search:        query.Search,
		Page:          query.Page,
		PageSize:      query.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		items = append(items, dto.NewSlotResponse(&slots[i]))
	}

	s.audit.Record(db, userID, "Viewed parking slots list")
	return dto.NewListResponse(items, total, query.Page, query.Limit), nil
}

func (s *SlotServiceImpl) Update(db *gorm.DB, adminID, id string, req dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	updates := map[string]interface{}{}
	if req.SlotNumber != nil {
		updates["slot_number"] = *req.SlotNumber
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.VehicleType != nil {
		updates["vehicle_type"] = *req.VehicleType
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.slotRepo.Update(db, id, updates); err != nil {
			switch {
			case errors.Is(err, repositories.ErrSlotNumberExists):
				return nil, apperrors.ErrAlreadyExists(err, "Slot number already exists")
			case errors.Is(err, repositories.ErrSlotNotFound):
				return nil, apperrors.NewNotFoundError("parking_slot", "Parking slot not found")
			default:
				return nil, apperrors.InternalError(err)
			}
		}
		s.audit.Record(db, adminID, "Updated parking slot "+id)
	}

	return s.get(db, id)
}

func (s *SlotServiceImpl) Delete(db *gorm.DB, adminID, id string) error {
	if err := s.slotRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return apperrors.NewNotFoundError("parking_slot", "Parking slot not found")
		}
		return apperrors.InternalError(err)
	}

	s.audit.Record(db, adminID, "Deleted parking slot "+id)
	return nil
}
