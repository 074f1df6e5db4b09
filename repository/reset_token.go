package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/redis/go-redis/v9"
)

const (
	resetTokenKeyPrefix = "reset:token:"
	resetEmailKeyPrefix = "reset:email:"
)

// resetTokenRedisRepository keeps two keys per live token, token->email and
// email->token, so a token can be consumed by value and invalidated by email
// when the OTP-based reset wins instead.
type resetTokenRedisRepository struct {
	client *redis.Client
}

func NewResetTokenRepository(client *redis.Client) domain.ResetTokenRepository {
	return &resetTokenRedisRepository{client: client}
}

func (r *resetTokenRedisRepository) SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error {
	// Drop the previous token for this email so only the newest link works.
	if err := r.DeleteResetTokenByEmail(ctx, email); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, resetTokenKeyPrefix+token, email, ttl)
	pipe.Set(ctx, resetEmailKeyPrefix+email, token, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *resetTokenRedisRepository) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	// GETDEL makes consumption at-most-once under concurrent attempts.
	email, err := r.client.GetDel(ctx, resetTokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrInvalidResetToken
	}
	if err != nil {
		return "", err
	}

	if err := r.client.Del(ctx, resetEmailKeyPrefix+email).Err(); err != nil {
		return "", err
	}
	return email, nil
}

func (r *resetTokenRedisRepository) DeleteResetTokenByEmail(ctx context.Context, email string) error {
	token, err := r.client.Get(ctx, resetEmailKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.client.Del(ctx, resetTokenKeyPrefix+token, resetEmailKeyPrefix+email).Err()
}
