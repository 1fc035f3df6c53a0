package contact

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrdesk/internal/platform/querier"
	"hrdesk/internal/platform/wiretime"
)

const messageColumns = `id, name, email, message, created_at`

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func scanMessage(row pgx.Row) (Message, error) {
	var m Message
	var created time.Time
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &created); err != nil {
		return Message{}, err
	}
	m.CreatedAt = wiretime.FromTime(created)
	return m, nil
}

func (s *Store) Create(ctx context.Context, m Message) (Message, error) {
	return scanMessage(s.DB.QueryRow(ctx, `
    INSERT INTO contact_messages (name, email, message)
    VALUES ($1,$2,$3)
    RETURNING `+messageColumns, m.Name, m.Email, m.Message))
}

func (s *Store) List(ctx context.Context) ([]Message, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Message, error) {
	m, err := scanMessage(s.DB.QueryRow(ctx, `SELECT `+messageColumns+` FROM contact_messages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Message{}, ErrMessageNotFound
	}
	return m, err
}
