package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPCode is one pending one-time code per (email, purpose). Re-requesting
// a code replaces the row in place, so a user never has two live codes for
// the same purpose.
type OTPCode struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email     string     `gorm:"size:255;not null;index:idx_email_purpose,unique"`
	Purpose   OTPPurpose `gorm:"size:50;not null;index:idx_email_purpose,unique"`
	Code      string     `gorm:"size:6;not null"`
	Reference string     `gorm:"size:10;not null"` // shown to the user next to the code
	Used      bool       `gorm:"default:false"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (OTPCode) TableName() string {
	return TableOTPCodes.String()
}

func (o *OTPCode) BeforeCreate(_ *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

// IsExpired reports whether the 2-minute window has passed.
func (o *OTPCode) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}
