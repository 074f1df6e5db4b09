package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) domain.OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) SaveOTP(ctx context.Context, entry *domain.OTPEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return translateDBError(err, domain.ErrInvalidOTP)
	}
	return nil
}

// ConsumeOTP runs check-then-mark inside one transaction. The guarded UPDATE
// keyed on verified = false makes consumption at-most-once: a concurrent
// consumer that loses the race affects zero rows and observes ErrInvalidOTP,
// exactly as if the entry never matched.
func (r *otpRepository) ConsumeOTP(ctx context.Context, email, code, purpose string, now time.Time) (*domain.OTPEntry, error) {
	var entry domain.OTPEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("email = ? AND code = ? AND purpose = ? AND verified = ?", email, code, purpose, false).
			Order("created_at DESC").
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInvalidOTP
			}
			return translateDBError(err, domain.ErrInvalidOTP)
		}

		if entry.ExpiresAt.Before(now) {
			return domain.ErrOTPExpired
		}

		res := tx.Model(&domain.OTPEntry{}).
			Where("id = ? AND verified = ?", entry.ID, false).
			Update("verified", true)
		if res.Error != nil {
			return translateDBError(res.Error, domain.ErrInvalidOTP)
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidOTP
		}
		entry.Verified = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *otpRepository) LinkUser(ctx context.Context, entryID, userID uint) error {
	res := r.db.WithContext(ctx).
		Model(&domain.OTPEntry{}).
		Where("id = ?", entryID).
		Update("user_id", userID)
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrInvalidOTP)
	}
	return nil
}

func (r *otpRepository) InvalidateByEmail(ctx context.Context, email, purpose string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.OTPEntry{}).
		Where("email = ? AND purpose = ? AND verified = ?", email, purpose, false).
		Update("verified", true)
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrInvalidOTP)
	}
	return nil
}
