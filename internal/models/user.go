package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`

	// Relations
	Vehicles []Vehicle `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Otps     []Otp     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
