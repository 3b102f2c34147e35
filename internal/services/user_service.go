package services

import (
	"errors"

	"parkhub_backend/internal/auth"
	"parkhub_backend/internal/repositories"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ListUsers(db *gorm.DB, actorID string, query dto.PaginationQuery) (*dto.ListResponse[dto.UserResponse], error)
	// DeleteUser removes an account. Admins cannot delete themselves.
	DeleteUser(db *gorm.DB, actorID, targetID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	audit    AuditService
}

func NewUserService(userRepo repositories.UserRepository, audit AuditService) UserService {
	return &UserServiceImpl{userRepo: userRepo, audit: audit}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	resp, err := s.getProfile(db, userID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(db, userID, "Viewed profile")
	return resp, nil
}

func (s *UserServiceImpl) getProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["password_hash"] = hash
	}

	if len(updates) > 0 {
		if err := s.userRepo.UpdateProfile(db, userID, updates); err != nil {
			switch {
			case errors.Is(err, repositories.ErrUserAlreadyExists):
				return nil, apperrors.ErrEmailAlreadyExists
			case errors.Is(err, repositories.ErrUserNotFound):
				return nil, apperrors.NewNotFoundError("user", "User not found")
			default:
				return nil, apperrors.InternalError(err)
			}
		}
		s.audit.Record(db, userID, "Updated profile")
	}

	return s.getProfile(db, userID)
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, actorID string, query dto.PaginationQuery) (*dto.ListResponse[dto.UserResponse], error) {
	query.Normalize()

	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}

	s.audit.Record(db, actorID, "Viewed users list")
	return dto.NewListResponse(items, total, query.Page, query.Limit), nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, actorID, targetID string) error {
	if actorID == targetID {
		return apperrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(db, targetID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	s.audit.Record(db, actorID, "Deleted user "+targetID)
	return nil
}
