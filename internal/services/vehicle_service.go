package services

import (
	"errors"

	"parkhub_backend/internal/models"
	"parkhub_backend/internal/repositories"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type VehicleService interface {
	Create(db *gorm.DB, ownerID string, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	// Get returns the vehicle; non-admins only see their own.
	Get(db *gorm.DB, id, userID string, isAdmin bool) (*dto.VehicleResponse, error)
	// List returns the caller's vehicles, or every vehicle for admins, each row carrying
	// the approval status of its slot request if one was approved.
	List(db *gorm.DB, userID string, isAdmin bool, query dto.PaginationQuery) (*dto.ListResponse[dto.VehicleResponse], error)
	Update(db *gorm.DB, id, ownerID string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	// Delete removes the vehicle; non-admins can only delete their own.
	Delete(db *gorm.DB, id, userID string, isAdmin bool) error
}

type VehicleServiceImpl struct {
	vehicleRepo repositories.VehicleRepository
	audit       AuditService
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository, audit AuditService) VehicleService {
	return &VehicleServiceImpl{vehicleRepo: vehicleRepo, audit: audit}
}

func (s *VehicleServiceImpl) Create(db *gorm.DB, ownerID string, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle := &models.Vehicle{
		UserID:          ownerID,
		PlateNumber:     req.PlateNumber,
		VehicleType:     models.VehicleType(req.VehicleType),
		Size:            models.VehicleSize(req.Size),
		OtherAttributes: req.OtherAttributes,
	}

	if err := s.vehicleRepo.Create(db, vehicle); err != nil {
		if errors.Is(err, repositories.ErrPlateAlreadyExists) {
			return nil, apperrors.ErrPlateAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(db, ownerID, "Registered vehicle "+vehicle.PlateNumber)

	resp := dto.NewVehicleResponse(vehicle)
	return &resp, nil
}

func (s *VehicleServiceImpl) Get(db *gorm.DB, id, userID string, isAdmin bool) (*dto.VehicleResponse, error) {
	resp, err := s.get(db, id, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	s.audit.Record(db, userID, "Viewed vehicle "+id)
	return resp, nil
}

func (s *VehicleServiceImpl) get(db *gorm.DB, id, userID string, isAdmin bool) (*dto.VehicleResponse, error) {
	var (
		vehicle *models.Vehicle
		err     error
	)
	if isAdmin {
		vehicle, err = s.vehicleRepo.FindByID(db, id)
	} else {
		vehicle, err = s.vehicleRepo.FindOwned(db, id, userID)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrVehicleNotFound) {
			return nil, apperrors.NewNotFoundError("vehicle", "Vehicle not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewVehicleResponse(vehicle)
	return &resp, nil
}

func (s *VehicleServiceImpl) List(db *gorm.DB, userID string, isAdmin bool, query dto.PaginationQuery) (*dto.ListResponse[dto.VehicleResponse], error) {
	query.Normalize()

	filter := repositories.VehicleFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	}
	if !isAdmin {
		filter.OwnerID = userID
	}

	rows, total, err := s.vehicleRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.VehicleResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NewVehicleListItem(row))
	}

	s.audit.Record(db, userID, "Viewed vehicles list")
	return dto.NewListResponse(items, total, query.Page, query.Limit), nil
}

func (s *VehicleServiceImpl) Update(db *gorm.DB, id, ownerID string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	updates := map[string]interface{}{}
	if req.PlateNumber != nil {
		updates["plate_number"] = *req.PlateNumber
	}
	if req.VehicleType != nil {
		updates["vehicle_type"] = *req.VehicleType
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.OtherAttributes != nil {
		updates["other_attributes"] = req.OtherAttributes
	}

	if len(updates) > 0 {
		if err := s.vehicleRepo.Update(db, id, ownerID, updates); err != nil {
			switch {
			case errors.Is(err, repositories.ErrPlateAlreadyExists):
				return nil, apperrors.ErrPlateAlreadyExists
			case errors.Is(err, repositories.ErrVehicleNotFound):
				return nil, apperrors.NewNotFoundError("vehicle", "Vehicle not found")
			default:
				return nil, apperrors.InternalError(err)
			}
		}
		s.audit.Record(db, ownerID, "Updated vehicle "+id)
	}

	return s.get(db, id, ownerID, false)
}

func (s *VehicleServiceImpl) Delete(db *gorm.DB, id, userID string, isAdmin bool) error {
	ownerID := userID
	if isAdmin {
		ownerID = ""
	}

	if err := s.vehicleRepo.Delete(db, id, ownerID); err != nil {
		if errors.Is(err, repositories.ErrVehicleNotFound) {
			return apperrors.NewNotFoundError("vehicle", "Vehicle not found")
		}
		return apperrors.InternalError(err)
	}

	s.audit.Record(db, userID, "Deleted vehicle "+id)
	return nil
}
