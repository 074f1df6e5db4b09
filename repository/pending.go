package repository

import (
	"context"
	"strings"
	"time"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/redis/go-redis/v9"
)

const pendingKeyPrefix = "signup:"

type pendingRedisRepository struct {
	client *redis.Client
}

func NewPendingSignupRepository(client *redis.Client) domain.PendingSignupRepository {
	return &pendingRedisRepository{client: client}
}

func (r *pendingRedisRepository) SavePendingSignup(ctx context.Context, signup *domain.PendingSignup, ttl time.Duration) error {
	key := pendingKeyPrefix + signup.Email

	data := map[string]string{
		"name":     strings.TrimSpace(signup.Name),
		"password": strings.TrimSpace(signup.PasswordHash),
	}

	if err := r.client.HSet(ctx, key, data).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, key, ttl).Err()
}

func (r *pendingRedisRepository) GetPendingSignup(ctx context.Context, email string) (*domain.PendingSignup, error) {
	data, err := r.client.HGetAll(ctx, pendingKeyPrefix+email).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil // expired or never stored
	}
	return &domain.PendingSignup{
		Name:         data["name"],
		Email:        email,
		PasswordHash: data["password"],
	}, nil
}

func (r *pendingRedisRepository) DeletePendingSignup(ctx context.Context, email string) error {
	return r.client.Del(ctx, pendingKeyPrefix+email).Err()
}
