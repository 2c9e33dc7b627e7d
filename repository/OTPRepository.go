package repository

import (
	"time"

	"planboard/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OTPRepository interface {
	// Upsert inserts the code, or replaces the existing row for the same
	// (email, purpose) so only one code per flow is ever live.
	Upsert(otp *model.OTPCode) error
	GetByEmailAndPurpose(email string, purpose model.OTPPurpose) (*model.OTPCode, error)
	MarkUsed(id uuid.UUID) error
	DeleteExpired() error
}

type pgOTPRepo struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &pgOTPRepo{db: db}
}

func (r *pgOTPRepo) Upsert(otp *model.OTPCode) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}, {Name: "purpose"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"code", "reference", "used", "expires_at", "updated_at",
		}),
	}).Create(otp).Error
}

func (r *pgOTPRepo) GetByEmailAndPurpose(email string, purpose model.OTPPurpose) (*model.OTPCode, error) {
	var o model.OTPCode
	if err := r.db.Where("email = ? AND purpose = ?", email, purpose).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *pgOTPRepo) MarkUsed(id uuid.UUID) error {
	return r.db.Model(&model.OTPCode{}).Where("id = ?", id).Update("used", true).Error
}

func (r *pgOTPRepo) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&model.OTPCode{}).Error
}
