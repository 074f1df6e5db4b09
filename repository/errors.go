package repository

import (
	"context"
	"errors"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translateDBError maps driver and gorm failures onto the domain taxonomy so
// callers handle explicit variants instead of raw database errors. notFound is
// the sentinel to use for gorm.ErrRecordNotFound, which differs per entity.
func translateDBError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrDuplicateEmail
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrStoreUnavailable
	}
	return err
}
