package domain

import (
	"context"
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:150;uniqueIndex;not null" json:"email"` // stored lowercase
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Notes []Note `gorm:"foreignKey:UserID" json:"-"`
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	// DeleteUser removes the user together with owned notes and linked OTP
	// entries in one transaction.
	DeleteUser(ctx context.Context, id uint) error
}
