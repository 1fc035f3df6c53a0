package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrdesk/internal/platform/querier"
	"hrdesk/internal/platform/wiretime"
)

type StoreAPI interface {
	FindByEmail(ctx context.Context, email string) (Credentials, error)
	GetUser(ctx context.Context, userID string) (User, error)
	UpdateName(ctx context.Context, userID, name string) error
	AssociateEmployee(ctx context.Context, userID, employeeID string) error
	CreateUser(ctx context.Context, user User, passwordHash string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, userID, role string) error
}

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) FindByEmail(ctx context.Context, email string) (Credentials, error) {
	var out Credentials
	var created time.Time
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, name, role, COALESCE(employee_id::text, ''), created_at, password_hash
    FROM users
    WHERE email = $1
  `, email).Scan(&out.ID, &out.Email, &out.Name, &out.Role, &out.EmployeeID, &created, &out.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credentials{}, ErrUserNotFound
	}
	out.CreatedAt = wiretime.FromTime(created)
	return out, err
}

func (s *Store) GetUser(ctx context.Context, userID string) (User, error) {
	var out User
	var created time.Time
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, name, role, COALESCE(employee_id::text, ''), created_at
    FROM users
    WHERE id = $1
  `, userID).Scan(&out.ID, &out.Email, &out.Name, &out.Role, &out.EmployeeID, &created)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	out.CreatedAt = wiretime.FromTime(created)
	return out, err
}

func (s *Store) UpdateName(ctx context.Context, userID, name string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET name = $2 WHERE id = $1", userID, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) AssociateEmployee(ctx context.Context, userID, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET employee_id = $2 WHERE id = $1", userID, employeeID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CreateUser inserts a login account. A blank EmployeeID leaves it unlinked.
func (s *Store) CreateUser(ctx context.Context, user User, passwordHash string) (User, error) {
	var employeeID *string
	if user.EmployeeID != "" {
		employeeID = &user.EmployeeID
	}
	var created time.Time
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (email, name, password_hash, role, employee_id)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, created_at
  `, user.Email, user.Name, passwordHash, user.Role, employeeID).Scan(&user.ID, &created)
	if err != nil {
		return User{}, mapWriteError(err)
	}
	user.CreatedAt = wiretime.FromTime(created)
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, email, name, role, COALESCE(employee_id::text, ''), created_at
    FROM users
    ORDER BY email
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		var u User
		var created time.Time
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.EmployeeID, &created); err != nil {
			return nil, err
		}
		u.CreatedAt = wiretime.FromTime(created)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) UpdateRole(ctx context.Context, userID, role string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET role = $2 WHERE id = $1", userID, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// mapWriteError turns users constraint violations into domain errors.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "23505" && pgErr.ConstraintName == "users_email_key":
		return ErrEmailTaken
	case pgErr.Code == "23505":
		return ErrAlreadyAssociated
	case pgErr.Code == "23503":
		return ErrEmployeeNotFound
	}
	return err
}
