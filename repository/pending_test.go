package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestPendingSignup_SaveGetDelete(t *testing.T) {
	client := newTestRedis(t)
	repo := NewPendingSignupRepository(client)
	ctx := context.Background()

	signup := &domain.PendingSignup{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$fakedigestfakedigestfakedigest",
	}
	if err := repo.SavePendingSignup(ctx, signup, domain.OTPWindow); err != nil {
		t.Fatalf("SavePendingSignup error: %v", err)
	}

	got, err := repo.GetPendingSignup(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("GetPendingSignup error: %v", err)
	}
	if got == nil {
		t.Fatal("expected pending signup, got nil")
	}
	if got.Name != signup.Name || got.PasswordHash != signup.PasswordHash || got.Email != signup.Email {
		t.Fatalf("payload mismatch: %+v", got)
	}

	if err := repo.DeletePendingSignup(ctx, "asha@example.com"); err != nil {
		t.Fatalf("DeletePendingSignup error: %v", err)
	}
	got, err = repo.GetPendingSignup(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("GetPendingSignup error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}

func TestPendingSignup_MissingIsNotAnError(t *testing.T) {
	client := newTestRedis(t)
	repo := NewPendingSignupRepository(client)

	got, err := repo.GetPendingSignup(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("GetPendingSignup error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestPendingSignup_ExpiresWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewPendingSignupRepository(client)
	ctx := context.Background()

	signup := &domain.PendingSignup{Name: "Asha", Email: "asha@example.com", PasswordHash: "x"}
	if err := repo.SavePendingSignup(ctx, signup, time.Minute); err != nil {
		t.Fatalf("SavePendingSignup error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := repo.GetPendingSignup(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("GetPendingSignup error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected payload to expire, got %+v", got)
	}
}
