package services

import (
	"errors"
	"net/http"
	"time"

	"parkhub_backend/internal/auth"
	"parkhub_backend/internal/config"
	"parkhub_backend/internal/email"
	"parkhub_backend/internal/logger"
	"parkhub_backend/internal/models"
	"parkhub_backend/internal/repositories"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	// Register creates an unverified account and emails an OTP. The first account
	// created while no admin exists gets the admin role.
	Register(db *gorm.DB, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyOtp(db *gorm.DB, req dto.VerifyOtpRequest) error
	ResendOtp(db *gorm.DB, req dto.ResendOtpRequest) error
	Login(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, userID string)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	otpRepo  repositories.OtpRepository
	mailer   email.Provider
	audit    AuditService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	otpRepo repositories.OtpRepository,
	mailer email.Provider,
	audit AuditService,
) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailer:   mailer,
		audit:    audit,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRoleUser
	hasAdmin, err := s.userRepo.AdminExists(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !hasAdmin {
		role = models.UserRoleAdmin
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.issueOtp(db, user); err != nil {
		// The account stays so the user can request a resend.
		return nil, err
	}

	s.audit.Record(db, user.ID, "Registered an account")

	return &dto.RegisterResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *AuthServiceImpl) VerifyOtp(db *gorm.DB, req dto.VerifyOtpRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserAlreadyVerified
		}
		return apperrors.InternalError(err)
	}
	if user.IsVerified {
		return apperrors.ErrUserAlreadyVerified
	}

	otp, err := s.otpRepo.FindValid(db, user.ID, req.Otp, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrOtpNotFound) {
			return apperrors.ErrInvalidOtp
		}
		return apperrors.InternalError(err)
	}

	if err := s.otpRepo.MarkVerified(db, user.ID, otp.Code); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.VerifyUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.Record(db, user.ID, "Verified account via OTP")
	return nil
}

func (s *AuthServiceImpl) ResendOtp(db *gorm.DB, req dto.ResendOtpRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserAlreadyVerified
		}
		return apperrors.InternalError(err)
	}
	if user.IsVerified {
		return apperrors.ErrUserAlreadyVerified
	}

	// Previous codes are invalidated before a new one is issued.
	if err := s.otpRepo.DeleteForUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.issueOtp(db, user); err != nil {
		return err
	}

	s.audit.Record(db, user.ID, "Requested OTP resend")
	return nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(db, user.ID, "Logged in")

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, userID string) {
	// Tokens are stateless; logout is an audit event only.
	s.audit.Record(db, userID, "Logged out")
}

// issueOtp stores a fresh code and emails it. An email failure is fatal for the
// calling operation but the stored code remains usable after a resend.
func (s *AuthServiceImpl) issueOtp(db *gorm.DB, user *models.User) error {
	code, err := auth.GenerateOtpCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	ttl := config.GetConfig().OtpTTL()
	otp := &models.Otp{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.otpRepo.Create(db, otp); err != nil {
		return apperrors.InternalError(err)
	}

	ttlMinutes := int(ttl / time.Minute)
	if err := s.mailer.SendOtp(user.Email, code, ttlMinutes); err != nil {
		logger.Error("otp email delivery failed", "user_id", user.ID, "error", err)
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "email",
			"Failed to send verification email", http.StatusInternalServerError)
	}
	return nil
}
