package repository

import (
	"context"
	"time"
)

// EnsureSchema creates the two backing tables when they do not exist yet.
// Safe to call on every boot and from the bootstrap endpoint.
func (r *Repository) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS baristas (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			role VARCHAR(50) NOT NULL,
			avatar VARCHAR(500),
			created_at TIMESTAMP DEFAULT NOW()
		)
	`
	if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
		return storeErr(err)
	}

	query = `
		CREATE TABLE IF NOT EXISTS schedules (
			id SERIAL PRIMARY KEY,
			schedule_date DATE NOT NULL,
			shift_type VARCHAR(20) NOT NULL,
			barista_id INTEGER REFERENCES baristas(id) ON DELETE CASCADE,
			created_at TIMESTAMP DEFAULT NOW(),
			UNIQUE(schedule_date, shift_type, barista_id)
		)
	`
	if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
		return storeErr(err)
	}

	return nil
}
