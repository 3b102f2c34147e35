package repositories

import (
	"errors"
	"time"

	"parkhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOtpNotFound = errors.New("otp not found")

type OtpRepository interface {
	Create(db *gorm.DB, otp *models.Otp) error
	// FindValid returns the OTP only if the code matches, is unexpired and unused.
	FindValid(db *gorm.DB, userID, code string, now time.Time) (*models.Otp, error)
	MarkVerified(db *gorm.DB, userID, code string) error
	DeleteForUser(db *gorm.DB, userID string) error
}

type OtpRepositoryImpl struct{}

func NewOtpRepository() OtpRepository {
	return &OtpRepositoryImpl{}
}

func (r *OtpRepositoryImpl) Create(db *gorm.DB, otp *models.Otp) error {
	return db.Create(otp).Error
}

func (r *OtpRepositoryImpl) FindValid(db *gorm.DB, userID, code string, now time.Time) (*models.Otp, error) {
	var otp models.Otp
	err := db.Where("user_id = ? AND code = ? AND expires_at > ? AND is_verified = ?",
		userID, code, now, false).
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOtpNotFound
		}
		return nil, err
	}
	return &otp, nil
}

func (r *OtpRepositoryImpl) MarkVerified(db *gorm.DB, userID, code string) error {
	return db.Model(&models.Otp{}).
		Where("user_id = ? AND code = ?", userID, code).
		Update("is_verified", true).Error
}

func (r *OtpRepositoryImpl) DeleteForUser(db *gorm.DB, userID string) error {
	return db.Delete(&models.Otp{}, "user_id = ?", userID).Error
}
