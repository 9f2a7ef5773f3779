package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
)

func (r *Repository) ListBaristas() ([]*domain.Barista, error) {
	query := `
		SELECT id, name, role, avatar, created_at
		FROM baristas
		ORDER BY id ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	baristas := make([]*domain.Barista, 0)
	for rows.Next() {
		barista := &domain.Barista{}
		dst := []any{&barista.ID, &barista.Name, &barista.Role, &barista.Avatar, &barista.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, storeErr(err)
		}
		baristas = append(baristas, barista)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return baristas, nil
}

func (r *Repository) GetBaristaByID(id int64) (*domain.Barista, error) {
	query := `
		SELECT name, role, avatar, created_at
		FROM baristas WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	barista := &domain.Barista{
		ID: id,
	}

	dst := []any{&barista.Name, &barista.Role, &barista.Avatar, &barista.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBaristaNotFound
		}
		return nil, storeErr(err)
	}

	return barista, nil
}

func (r *Repository) CreateBarista(barista *domain.Barista) error {
	query := `
		INSERT INTO baristas (name, role, avatar)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{barista.Name, barista.Role, barista.Avatar}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&barista.ID, &barista.CreatedAt); err != nil {
		return storeErr(err)
	}

	return nil
}

// UpdateBarista applies a partial update: nil fields keep their stored value.
// The coalescing happens in SQL so the read-modify-write is a single statement.
func (r *Repository) UpdateBarista(id int64, name, role, avatar *string) (*domain.Barista, error) {
	query := `
		UPDATE baristas
		SET
			name = COALESCE($1, name),
			role = COALESCE($2, role),
			avatar = COALESCE($3, avatar)
		WHERE id = $4
		RETURNING id, name, role, avatar, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	barista := &domain.Barista{}
	args := []any{name, role, avatar, id}
	dst := []any{&barista.ID, &barista.Name, &barista.Role, &barista.Avatar, &barista.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBaristaNotFound
		}
		return nil, storeErr(err)
	}

	return barista, nil
}

// DeleteBarista removes the barista row; the schedules FK cascades, so the
// barista and all of its assignments disappear in the same statement. Deleting
// an id that is already gone is a no-op, not an error.
func (r *Repository) DeleteBarista(id int64) error {
	query := `
		DELETE FROM baristas WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return storeErr(err)
	}

	return nil
}

func (r *Repository) CountBaristas() (int64, error) {
	query := `
		SELECT COUNT(*) FROM baristas
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, storeErr(err)
	}

	return count, nil
}
