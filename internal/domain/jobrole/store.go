package jobrole

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrdesk/internal/platform/querier"
	"hrdesk/internal/platform/wiretime"
)

const jobRoleColumns = `id, title, description, country, city, linkedin_url, is_open, created_at`

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func scanJobRole(row pgx.Row) (JobRole, error) {
	var j JobRole
	var created time.Time
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Location.Country, &j.Location.City, &j.LinkedInURL, &j.IsOpen, &created)
	if err != nil {
		return JobRole{}, err
	}
	j.CreatedAt = wiretime.FromTime(created)
	return j, nil
}

func (s *Store) Create(ctx context.Context, j JobRole) (JobRole, error) {
	return scanJobRole(s.DB.QueryRow(ctx, `
    INSERT INTO job_roles (title, description, country, city, linkedin_url, is_open)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING `+jobRoleColumns,
		j.Title, j.Description, j.Location.Country, j.Location.City, j.LinkedInURL, j.IsOpen,
	))
}

func (s *Store) ListOpen(ctx context.Context) ([]JobRole, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+jobRoleColumns+` FROM job_roles WHERE is_open ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JobRole{}
	for rows.Next() {
		j, err := scanJobRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// Close marks an open posting closed. Closing a closed posting is an error so
// callers can tell a stale view from a successful close.
func (s *Store) Close(ctx context.Context, id string) (JobRole, error) {
	j, err := scanJobRole(s.DB.QueryRow(ctx, `
    UPDATE job_roles SET is_open = false
    WHERE id = $1 AND is_open
    RETURNING `+jobRoleColumns, id))
	if !errors.Is(err, pgx.ErrNoRows) {
		return j, err
	}

	var exists bool
	if err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM job_roles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return JobRole{}, err
	}
	if exists {
		return JobRole{}, ErrAlreadyClosed
	}
	return JobRole{}, ErrJobRoleNotFound
}
