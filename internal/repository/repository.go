package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/config"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// storeErr normalizes driver failures. Row-level outcomes (no rows, constraint
// violations) pass through untouched so callers can inspect them; everything
// else is a connectivity or timeout problem and is wrapped as
// domain.ErrStoreUnavailable, which the boundary degrades to a cached view.
func storeErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return err
	case errors.As(err, &pgErr):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
}
