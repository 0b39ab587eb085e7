package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/bus-seat-reservation/internal/model"
)

// AdminRepo provides lookups against the 'admins' table. Password
// verification is not done here; the repository only hands the stored
// hash to the auth layer.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo returns an AdminRepo bound to the given database.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// GetByUsername fetches an admin by normalized username. It returns
// ErrAdminNotFound when no such admin exists.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	const q = `SELECT id, username, password_hash, created_at FROM admins WHERE username = ? LIMIT 1`
	var a model.Admin
	err := r.db.QueryRowContext(ctx, q, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Upsert creates an admin or replaces the password hash of an existing
// one. Used by the adminctl seeding tool.
func (r *AdminRepo) Upsert(ctx context.Context, username, passwordHash string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	const q = `INSERT INTO admins (username, password_hash) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE password_hash = VALUES(password_hash)`
	_, err := r.db.ExecContext(ctx, q, username, passwordHash)
	return err
}
