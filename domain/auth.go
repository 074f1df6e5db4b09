package domain

import (
	"context"

	"github.com/amit-3245/Secure-Notes-API/utils"
)

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager
	Register(ctx context.Context, name, email, password string) error
	VerifyRegistration(ctx context.Context, email, code string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthToken, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	ResetPasswordWithToken(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
	DeleteAccount(ctx context.Context, userID uint) error
}

type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
