package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrdesk/internal/platform/querier"
	"hrdesk/internal/platform/wiretime"
)

const payslipColumns = `id, employee_id, month, year, created_at, leave_balance, base_salary, salary_bonus, pf_deduction, final_payable`

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func scanPayslip(row pgx.Row) (Payslip, error) {
	var p Payslip
	var created time.Time
	err := row.Scan(&p.ID, &p.EmployeeID, &p.Month, &p.Year, &created, &p.LeaveBalance,
		&p.SalaryDetails.Base, &p.SalaryDetails.Bonus, &p.SalaryDetails.PFDeduction, &p.SalaryDetails.FinalPayable)
	if err != nil {
		return Payslip{}, err
	}
	p.CreatedAt = wiretime.FromTime(created)
	return p, nil
}

// InsertSnapshots runs in one transaction so a failed batch leaves no partial month.
func (s *Store) InsertSnapshots(ctx context.Context, payslips []Payslip) (int, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	created := 0
	for _, p := range payslips {
		tag, err := tx.Exec(ctx, `
    INSERT INTO payslips (employee_id, month, year, leave_balance, base_salary, salary_bonus, pf_deduction, final_payable)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    ON CONFLICT (employee_id, month, year) DO NOTHING
  `, p.EmployeeID, p.Month, p.Year, p.LeaveBalance,
			p.SalaryDetails.Base, p.SalaryDetails.Bonus, p.SalaryDetails.PFDeduction, p.SalaryDetails.FinalPayable)
		if err != nil {
			return 0, err
		}
		created += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return created, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+payslipColumns+`
    FROM payslips
    WHERE employee_id = $1
    ORDER BY year DESC, month DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Payslip{}
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Payslip, error) {
	p, err := scanPayslip(s.DB.QueryRow(ctx, `SELECT `+payslipColumns+` FROM payslips WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Payslip{}, ErrPayslipNotFound
	}
	return p, err
}
