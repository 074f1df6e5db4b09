package domain

import (
	"context"
	"time"
)

const (
	// OTPPurposeRegister tags codes issued for account registration.
	OTPPurposeRegister = "register"
	// OTPPurposeReset tags codes issued for password reset. A code issued for
	// one purpose is never consumable by the other flow.
	OTPPurposeReset = "reset"

	// OTPWindow is the validity window of a one-time code.
	OTPWindow = 10 * time.Minute
	// ResetTokenWindow is the validity window of a link-based reset token.
	ResetTokenWindow = 15 * time.Minute
)

// OTPEntry is a durable one-time code challenge. It is keyed by email because
// during registration the user does not exist yet; UserID is linked after a
// registration code is consumed. Entries are never physically deleted here,
// only flipped to verified.
type OTPEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:150;index;not null" json:"email"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Code      string    `gorm:"size:6;not null" json:"-"` // exactly 6 ASCII digits, leading zeros preserved
	Purpose   string    `gorm:"size:16;not null;default:register" json:"purpose"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type OTPRepository interface {
	SaveOTP(ctx context.Context, entry *OTPEntry) error
	// ConsumeOTP selects the newest unverified entry matching (email, code,
	// purpose) and atomically marks it verified. ErrInvalidOTP when no entry
	// matches or a concurrent consumer won; ErrOTPExpired when the entry
	// matched but expires_at is before now.
	ConsumeOTP(ctx context.Context, email, code, purpose string, now time.Time) (*OTPEntry, error)
	// LinkUser attaches the consumed entry to the account it created.
	LinkUser(ctx context.Context, entryID, userID uint) error
	// InvalidateByEmail consumes every outstanding unverified entry of the
	// given purpose for an email.
	InvalidateByEmail(ctx context.Context, email, purpose string) error
}

// PendingSignup carries the step-1 registration payload across the OTP
// challenge so the account is created with the real name and password hash.
type PendingSignup struct {
	Name         string
	Email        string
	PasswordHash string
}

type PendingSignupRepository interface {
	SavePendingSignup(ctx context.Context, signup *PendingSignup, ttl time.Duration) error
	// GetPendingSignup returns (nil, nil) when no payload exists for the email.
	GetPendingSignup(ctx context.Context, email string) (*PendingSignup, error)
	DeletePendingSignup(ctx context.Context, email string) error
}

type ResetTokenRepository interface {
	// SaveResetToken replaces any previous token for the email.
	SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error
	// ConsumeResetToken resolves the token to its email and deletes it.
	// ErrInvalidResetToken when the token is unknown or already consumed.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
	DeleteResetTokenByEmail(ctx context.Context, email string) error
}
