package domain

import "errors"

// Sentinel errors returned by the core. Handlers map these onto HTTP statuses;
// anything outside this taxonomy is treated as an internal failure.
var (
	// ErrEmailAlreadyRegistered rejects a registration challenge for an email
	// that already has an account.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrDuplicateEmail is the unique-violation outcome for the loser of a
	// concurrent account-creation race.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidOTP covers a wrong code, an already-consumed code and a lost
	// consumption race. Indistinguishable on purpose.
	ErrInvalidOTP = errors.New("invalid otp")
	// ErrOTPExpired is returned when the code matched but its window passed.
	ErrOTPExpired = errors.New("otp expired")

	// ErrInvalidCredentials is uniform for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrIncorrectOldPassword rejects a password change whose old password
	// does not verify.
	ErrIncorrectOldPassword = errors.New("incorrect old password")

	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidResetToken covers unknown, expired and already-consumed
	// reset-link tokens.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrNoteNotFound      = errors.New("note not found")

	// ErrStoreUnavailable signals a deadline or connectivity failure talking
	// to a backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
