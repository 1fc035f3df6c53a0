package contact

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageID = "3e2d1c0b-9a8f-4e7d-8c6b-5a4f3e2d1c0b"

var messageRowColumns = []string{"id", "name", "email", "message", "created_at"}

func TestStoreCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2024, 6, 2, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages (name, email, message)")).
		WithArgs("Ada", "ada@example.com", "Hello").
		WillReturnRows(pgxmock.NewRows(messageRowColumns).AddRow(messageID, "Ada", "ada@example.com", "Hello", createdAt))

	m, err := NewStore(mock).Create(context.Background(), Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, messageID, m.ID)
	assert.Equal(t, createdAt.UnixMilli(), m.CreatedAt.Millis())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreListNewestFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	newer := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows(messageRowColumns).
			AddRow(messageID, "Ada", "ada@example.com", "Second", newer).
			AddRow("8f7e6d5c-4b3a-4291-8f7e-6d5c4b3a2918", "Bob", "bob@example.com", "First", newer.Add(-time.Hour)))

	list, err := NewStore(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreGetMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE id = $1")).
		WithArgs(messageID).
		WillReturnError(pgx.ErrNoRows)

	_, err = NewStore(mock).Get(context.Background(), messageID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
