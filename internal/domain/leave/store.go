package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrdesk/internal/platform/querier"
	"hrdesk/internal/platform/wiretime"
)

const entryColumns = `id, employee_id, start_date, end_date, leave_type, reason, status, is_open, created_at`

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func scanEntry(row pgx.Row) (LeaveEntry, error) {
	var e LeaveEntry
	var start, end, created time.Time
	var status string
	if err := row.Scan(&e.ID, &e.EmployeeID, &start, &end, &e.LeaveType, &e.Reason, &status, &e.IsOpen, &created); err != nil {
		return LeaveEntry{}, err
	}
	e.StartDate = wiretime.FromTime(start)
	e.EndDate = wiretime.FromTime(end)
	e.Status = Status(status)
	e.CreatedAt = wiretime.FromTime(created)
	return e, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func (s *Store) Create(ctx context.Context, e LeaveEntry) (LeaveEntry, error) {
	days, err := CalculateDays(e.StartDate, e.EndDate)
	if err != nil {
		return LeaveEntry{}, err
	}

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return LeaveEntry{}, err
	}
	defer tx.Rollback(ctx)

	created, err := scanEntry(tx.QueryRow(ctx, `
    INSERT INTO leave_entries (employee_id, start_date, end_date, leave_type, reason, status, is_open)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+entryColumns,
		e.EmployeeID, e.StartDate.Time(), e.EndDate.Time(), e.LeaveType, e.Reason, string(e.Status), e.IsOpen,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return LeaveEntry{}, ErrEmployeeNotFound
		}
		return LeaveEntry{}, err
	}

	if created.Status == StatusApproved {
		if err := applyApproval(ctx, tx, created.EmployeeID, days); err != nil {
			return LeaveEntry{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return LeaveEntry{}, err
	}
	return created, nil
}

func (s *Store) Settle(ctx context.Context, id string, status Status) (LeaveEntry, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return LeaveEntry{}, err
	}
	defer tx.Rollback(ctx)

	current, err := scanEntry(tx.QueryRow(ctx, `SELECT `+entryColumns+` FROM leave_entries WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveEntry{}, ErrEntryNotFound
	}
	if err != nil {
		return LeaveEntry{}, err
	}
	if current.Status != StatusPending {
		return LeaveEntry{}, ErrNotPending
	}

	if _, err := tx.Exec(ctx, `UPDATE leave_entries SET status = $2, is_open = false WHERE id = $1`, id, string(status)); err != nil {
		return LeaveEntry{}, err
	}

	if status == StatusApproved {
		days, err := CalculateDays(current.StartDate, current.EndDate)
		if err != nil {
			return LeaveEntry{}, err
		}
		if err := applyApproval(ctx, tx, current.EmployeeID, days); err != nil {
			return LeaveEntry{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return LeaveEntry{}, err
	}
	current.Status = status
	current.IsOpen = false
	return current, nil
}

func applyApproval(ctx context.Context, tx pgx.Tx, employeeID string, days int64) error {
	tag, err := tx.Exec(ctx, `
    UPDATE employees
    SET leave_balance = GREATEST(leave_balance - $2, 0), total_leaves_taken = total_leaves_taken + $2
    WHERE id = $1
  `, employeeID, days)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]LeaveEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+entryColumns+`
    FROM leave_entries
    WHERE employee_id = $1
    ORDER BY start_date DESC, created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LeaveEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Summary(ctx context.Context, employeeID string) (LeaveSummary, error) {
	var sum LeaveSummary
	err := s.DB.QueryRow(ctx, `SELECT leave_balance, total_leaves_taken FROM employees WHERE id = $1`, employeeID).
		Scan(&sum.LeaveBalance, &sum.TotalLeavesTaken)
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveSummary{}, ErrEmployeeNotFound
	}
	return sum, err
}
