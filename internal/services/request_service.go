package services

import (
	"errors"
	"time"

	"parkhub_backend/internal/email"
	"parkhub_backend/internal/logger"
	"parkhub_backend/internal/models"
	"parkhub_backend/internal/repositories"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RequestService interface {
	Create(db *gorm.DB, userID string, req dto.CreateSlotRequestRequest) (*dto.SlotRequestResponse, error)
	List(db *gorm.DB, userID string, isAdmin bool, query dto.PaginationQuery) (*dto.ListResponse[dto.SlotRequestResponse], error)
	// Update swaps the vehicle on the caller's still-pending request.
	Update(db *gorm.DB, id, userID string, req dto.UpdateSlotRequestRequest) (*dto.SlotRequestResponse, error)
	Delete(db *gorm.DB, id, userID string) error
	// Approve atomically reserves the first compatible available slot for the pending
	// request. Both rows are locked for the duration of the transaction, so two
	// concurrent approvals can neither double-approve a request nor hand the same slot
	// to two vehicles. The notification email is sent after commit, best effort.
	Approve(db *gorm.DB, adminID, id string) (*dto.ApproveResponse, error)
	Reject(db *gorm.DB, adminID, id, reason string) (*dto.RejectResponse, error)
}

type RequestServiceImpl struct {
	requestRepo repositories.RequestRepository
	vehicleRepo repositories.VehicleRepository
	slotRepo    repositories.SlotRepository
	mailer      email.Provider
	audit       AuditService
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	vehicleRepo repositories.VehicleRepository,
	slotRepo repositories.SlotRepository,
	mailer email.Provider,
	audit AuditService,
) RequestService {
	return &RequestServiceImpl{
		requestRepo: requestRepo,
		vehicleRepo: vehicleRepo,
		slotRepo:    slotRepo,
		mailer:      mailer,
		audit:       audit,
	}
}

func (s *RequestServiceImpl) Create(db *gorm.DB, userID string, req dto.CreateSlotRequestRequest) (*dto.SlotRequestResponse, error) {
	vehicle, err := s.vehicleRepo.FindOwned(db, req.VehicleID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrVehicleNotFound) {
			return nil, apperrors.NewNotFoundError("vehicle", "Vehicle not found")
		}
		return nil, apperrors.InternalError(err)
	}

	request := &models.SlotRequest{
		UserID:        userID,
		VehicleID:     vehicle.ID,
		RequestStatus: models.RequestStatusPending,
		Vehicle:       vehicle,
	}
	if err := s.requestRepo.Create(db, request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(db, userID, "Requested slot for vehicle "+vehicle.PlateNumber)

	resp := dto.NewSlotRequestResponse(request)
	return &resp, nil
}

func (s *RequestServiceImpl) List(db *gorm.DB, userID string, isAdmin bool, query dto.PaginationQuery) (*dto.ListResponse[dto.SlotRequestResponse], error) {
	query.Normalize()

	filter := repositories.RequestFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	}
	if !isAdmin {
		filter.OwnerID = userID
	}

	requests, total, err := s.requestRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.SlotRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.NewSlotRequestResponse(&requests[i]))
	}

	s.audit.Record(db, userID, "Viewed slot requests list")
	return dto.NewListResponse(items, total, query.Page, query.Limit), nil
}

func (s *RequestServiceImpl) Update(db *gorm.DB, id, userID string, req dto.UpdateSlotRequestRequest) (*dto.SlotRequestResponse, error) {
	vehicle, err := s.vehicleRepo.FindOwned(db, req.VehicleID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrVehicleNotFound) {
			return nil, apperrors.NewNotFoundError("vehicle", "Vehicle not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.requestRepo.UpdateVehiclePending(db, id, userID, vehicle.ID); err != nil {
		if errors.Is(err, repositories.ErrRequestNotPending) {
			return nil, apperrors.ErrRequestNotEditable
		}
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(db, userID, "Updated slot request "+id)

	request, err := s.requestRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewSlotRequestResponse(request)
	return &resp, nil
}

func (s *RequestServiceImpl) Delete(db *gorm.DB, id, userID string) error {
	if err := s.requestRepo.DeletePending(db, id, userID); err != nil {
		if errors.Is(err, repositories.ErrRequestNotPending) {
			return apperrors.ErrRequestNotEditable
		}
		return apperrors.InternalError(err)
	}

	s.audit.Record(db, userID, "Cancelled slot request "+id)
	return nil
}

func (s *RequestServiceImpl) Approve(db *gorm.DB, adminID, id string) (*dto.ApproveResponse, error) {
	var (
		request *models.SlotRequest
		slot    *models.ParkingSlot
	)
	approvedAt := time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		request, err = s.requestRepo.FindPendingForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrRequestNotPending) {
				return apperrors.ErrRequestNotProcessable
			}
			return err
		}

		slot, err = s.slotRepo.FindFirstCompatibleForUpdate(tx, request.Vehicle.VehicleType, request.Vehicle.Size)
		if err != nil {
			if errors.Is(err, repositories.ErrNoCompatibleSlot) {
				return apperrors.ErrNoCompatibleSlots
			}
			return err
		}

		if err := s.slotRepo.MarkUnavailable(tx, slot.ID); err != nil {
			return err
		}
		if err := s.requestRepo.MarkApproved(tx, id, slot.ID, slot.SlotNumber, approvedAt); err != nil {
			if errors.Is(err, repositories.ErrRequestNotPending) {
				return apperrors.ErrRequestNotProcessable
			}
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	request.RequestStatus = models.RequestStatusApproved
	request.SlotID = &slot.ID
	request.SlotNumber = slot.SlotNumber
	request.ApprovedAt = &approvedAt
	slot.Status = models.SlotStatusUnavailable

	emailStatus := dto.EmailStatusSent
	if err := s.mailer.SendApproval(request.User.Email, request.Vehicle.PlateNumber, slot.SlotNumber, slot.Location); err != nil {
		logger.Error("approval email delivery failed", "request_id", id, "error", err)
		emailStatus = dto.EmailStatusFailed
	}

	s.audit.Record(db, adminID, "Approved slot request "+id)

	return &dto.ApproveResponse{
		Request:     dto.NewSlotRequestResponse(request),
		Slot:        dto.NewSlotResponse(slot),
		EmailStatus: emailStatus,
	}, nil
}

func (s *RequestServiceImpl) Reject(db *gorm.DB, adminID, id, reason string) (*dto.RejectResponse, error) {
	if reason == "" {
		return nil, apperrors.ErrRejectReasonRequired
	}

	var request *models.SlotRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		request, err = s.requestRepo.FindPendingForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrRequestNotPending) {
				return apperrors.ErrRequestNotProcessable
			}
			return err
		}
		if err := s.requestRepo.MarkRejected(tx, id, reason); err != nil {
			if errors.Is(err, repositories.ErrRequestNotPending) {
				return apperrors.ErrRequestNotProcessable
			}
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	request.RequestStatus = models.RequestStatusRejected
	request.RejectReason = reason

	// Location is informational in the notification; any compatible slot's location
	// serves, and a miss reads "unknown".
	location, err := s.slotRepo.FindLocationByCompatibility(db, request.Vehicle.VehicleType, request.Vehicle.Size)
	if err != nil && !errors.Is(err, repositories.ErrSlotNotFound) {
		logger.Warn("location lookup for rejection email failed", "request_id", id, "error", err)
	}
	if location == "" {
		location = "unknown"
	}

	emailStatus := dto.EmailStatusSent
	if err := s.mailer.SendRejection(request.User.Email, request.Vehicle.PlateNumber, location, reason); err != nil {
		logger.Error("rejection email delivery failed", "request_id", id, "error", err)
		emailStatus = dto.EmailStatusFailed
	}

	s.audit.Record(db, adminID, "Rejected slot request "+id)

	return &dto.RejectResponse{
		Request:     dto.NewSlotRequestResponse(request),
		EmailStatus: emailStatus,
	}, nil
}
