package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/rs/zerolog/log"
)

const accessTokenDuration = 30 * time.Minute

type authService struct {
	userRepo    domain.UserRepository
	otpRepo     domain.OTPRepository
	pendingRepo domain.PendingSignupRepository
	resetRepo   domain.ResetTokenRepository
	mailer      domain.EmailSender
	accessToken *utils.JWTManager
	bcryptCost  int
	resetURL    string
}

func NewAuthService(
	userRepo domain.UserRepository,
	otpRepo domain.OTPRepository,
	pendingRepo domain.PendingSignupRepository,
	resetRepo domain.ResetTokenRepository,
	mailer domain.EmailSender,
	jwtSecret string,
	bcryptCost int,
	resetURL string,
) domain.AuthUseCase {
	return &authService{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		pendingRepo: pendingRepo,
		resetRepo:   resetRepo,
		mailer:      mailer,
		accessToken: utils.NewJWTManager(jwtSecret, accessTokenDuration),
		bcryptCost:  bcryptCost,
		resetURL:    resetURL,
	}
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}

// Register is step 1 of registration: challenge the email with an OTP and park
// the name and password hash until the code is verified. No user row exists
// yet. Old unconsumed codes for the email stay valid until they expire.
func (s *authService) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	entry := &domain.OTPEntry{
		Email:     email,
		Code:      code,
		Purpose:   domain.OTPPurposeRegister,
		ExpiresAt: time.Now().Add(domain.OTPWindow),
	}
	if err := s.otpRepo.SaveOTP(ctx, entry); err != nil {
		return err
	}

	pending := &domain.PendingSignup{
		Name:         utils.NormalizeName(name),
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.pendingRepo.SavePendingSignup(ctx, pending, domain.OTPWindow); err != nil {
		return err
	}

	s.sendAsync(email, "Your OTP for Secure Notes", utils.OTPEmailBody(code))
	return nil
}

// VerifyRegistration is step 2: consume the code, then create the account
// from the parked step-1 payload so the real name and password apply.
func (s *authService) VerifyRegistration(ctx context.Context, email, code string) (*domain.User, error) {
	entry, err := s.otpRepo.ConsumeOTP(ctx, email, code, domain.OTPPurposeRegister, time.Now())
	if err != nil {
		return nil, err
	}

	pending, err := s.pendingRepo.GetPendingSignup(ctx, email)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		// The payload TTL matches the OTP window, so a consumable code without
		// a payload means the challenge has lapsed.
		return nil, domain.ErrInvalidOTP
	}

	user := &domain.User{
		Name:         pending.Name,
		Email:        email,
		PasswordHash: pending.PasswordHash,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.otpRepo.LinkUser(ctx, entry.ID, user.ID); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to link otp entry to user")
	}
	if err := s.pendingRepo.DeletePendingSignup(ctx, email); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to delete pending signup")
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.accessToken.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthToken{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err != nil {
		return err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	entry := &domain.OTPEntry{
		Email:     email,
		Code:      code,
		Purpose:   domain.OTPPurposeReset,
		ExpiresAt: time.Now().Add(domain.OTPWindow),
	}
	if err := s.otpRepo.SaveOTP(ctx, entry); err != nil {
		return err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return err
	}
	if err := s.resetRepo.SaveResetToken(ctx, token, email, domain.ResetTokenWindow); err != nil {
		return err
	}

	link := fmt.Sprintf("%s?token=%s", s.resetURL, token)
	s.sendAsync(email, "Reset Your Secure Notes Password", utils.ResetEmailBody(code, link))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if _, err := s.otpRepo.ConsumeOTP(ctx, email, code, domain.OTPPurposeReset, time.Now()); err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	// The OTP path won; the outstanding reset link must not work anymore.
	if err := s.resetRepo.DeleteResetTokenByEmail(ctx, email); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to invalidate reset token")
	}
	return nil
}

// ResetPasswordWithToken is the link-based reset: single-use token in place of
// the emailed code.
func (s *authService) ResetPasswordWithToken(ctx context.Context, token, newPassword string) error {
	email, err := s.resetRepo.ConsumeResetToken(ctx, token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	// The link won; outstanding reset codes must not work anymore.
	if err := s.otpRepo.InvalidateByEmail(ctx, email, domain.OTPPurposeReset); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to invalidate reset otps")
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(oldPassword, user.PasswordHash) {
		return domain.ErrIncorrectOldPassword
	}

	hashed, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, hashed)
}

// DeleteAccount removes the user and everything keyed to them. The store
// handles notes and OTP entries in one transaction; Redis leftovers are
// best-effort since they expire on their own.
func (s *authService) DeleteAccount(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	if err := s.resetRepo.DeleteResetTokenByEmail(ctx, user.Email); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("failed to drop reset token for deleted account")
	}
	if err := s.pendingRepo.DeletePendingSignup(ctx, user.Email); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("failed to drop pending signup for deleted account")
	}
	return nil
}

// sendAsync delivers mail off the request path. Delivery failure is logged and
// never rolls back the OTP record the caller just issued.
func (s *authService) sendAsync(to, subject, body string) {
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			log.Error().Err(err).Str("email", to).Str("subject", subject).Msg("email delivery failed")
		}
	}()
}
