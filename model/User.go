package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"size:50;not null"`
	Username        string    `gorm:"size:30;not null;uniqueIndex"`
	Email           string    `gorm:"size:255;not null;uniqueIndex"`
	Profile         string    `gorm:"size:255;default:'none-url'"` // avatar URL
	IsEmailVerified bool      `gorm:"default:false"`               // flipped by OTP verification
	IsActive        bool      `gorm:"default:true"`
	MFAEnabled      bool      `gorm:"default:false"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Credentials   []Credential   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Roles         []Role         `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE;"`
}

func (User) TableName() string {
	return TableUsers.String()
}

func (u *User) BeforeCreate(_ *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
