package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrdesk/internal/domain/compensation"
	"hrdesk/internal/platform/querier"
	"hrdesk/internal/platform/wiretime"
)

const employeeColumns = `id, name, job_title, department, email, joining_date, leave_balance, total_leaves_taken,
           base_salary, salary_bonus, pf_deduction, final_payable, bonus, pf_details, is_open, created_at`

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	var joining, created time.Time
	err := row.Scan(
		&e.ID, &e.Name, &e.JobTitle, &e.Department, &e.Email, &joining, &e.LeaveBalance, &e.TotalLeavesTaken,
		&e.Salary.Base, &e.Salary.Bonus, &e.Salary.PFDeduction, &e.Salary.FinalPayable, &e.Bonus, &e.PFDetails,
		&e.IsOpen, &created,
	)
	if err != nil {
		return Employee{}, err
	}
	e.JoiningDate = wiretime.FromTime(joining)
	e.CreatedAt = wiretime.FromTime(created)
	return e, nil
}

func (s *Store) Create(ctx context.Context, e Employee) (Employee, error) {
	var created time.Time
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, job_title, department, email, joining_date, leave_balance, total_leaves_taken,
                           base_salary, salary_bonus, pf_deduction, final_payable, bonus, pf_details, is_open)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
    RETURNING id, created_at
  `, e.Name, e.JobTitle, e.Department, e.Email, e.JoiningDate.Time(), e.LeaveBalance, e.TotalLeavesTaken,
		e.Salary.Base, e.Salary.Bonus, e.Salary.PFDeduction, e.Salary.FinalPayable, e.Bonus, e.PFDetails, e.IsOpen,
	).Scan(&e.ID, &created)
	if err != nil {
		return Employee{}, err
	}
	e.CreatedAt = wiretime.FromTime(created)
	return e, nil
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, err
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	return s.list(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name, id`)
}

func (s *Store) ListActive(ctx context.Context) ([]Employee, error) {
	return s.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE is_open ORDER BY name, id`)
}

func (s *Store) list(ctx context.Context, query string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) UpdateSalary(ctx context.Context, id string, salary compensation.Salary) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET base_salary = $2, salary_bonus = $3, pf_deduction = $4, final_payable = $5
    WHERE id = $1
  `, id, salary.Base, salary.Bonus, salary.PFDeduction, salary.FinalPayable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
