package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/querier"
)

// Seed creates the bootstrap HR admin when SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set. Existing users are left untouched.
func Seed(ctx context.Context, db querier.Querier, cfg config.Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.SeedAdminEmail))
	if email == "" || strings.TrimSpace(cfg.SeedAdminPassword) == "" {
		return nil
	}

	var id string
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
    INSERT INTO users (email, name, password_hash, role)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (email) DO NOTHING
  `, email, "HR Admin", hash, auth.RoleAdmin)
	return err
}
