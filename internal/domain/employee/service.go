package employee

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"hrdesk/internal/domain/compensation"
)

type Service struct {
	Store               StoreAPI
	DefaultLeaveBalance int64
}

func NewService(store StoreAPI, defaultLeaveBalance int64) *Service {
	return &Service{Store: store, DefaultLeaveBalance: defaultLeaveBalance}
}

// Create validates the input and stores a new active employee whose salary
// carries the statutory PF deduction.
func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return Employee{}, ErrNameRequired
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return Employee{}, ErrInvalidEmail
		}
	}
	if in.JoiningDate == nil {
		return Employee{}, ErrJoiningDate
	}
	base, bonus := in.BaseSalary.Int64(), in.Bonus.Int64()
	if err := compensation.CheckAmounts(base, bonus); err != nil {
		return Employee{}, err
	}

	return s.Store.Create(ctx, Employee{
		Name:         in.Name,
		JobTitle:     strings.TrimSpace(in.JobTitle),
		Department:   strings.TrimSpace(in.Department),
		Email:        in.Email,
		JoiningDate:  *in.JoiningDate,
		LeaveBalance: s.DefaultLeaveBalance,
		Salary:       compensation.NewSalary(base, bonus),
		Bonus:        bonus,
		PFDetails:    strings.TrimSpace(in.PFDetails),
		IsOpen:       true,
	})
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Employee{}, ErrEmployeeNotFound
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.Store.List(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]Employee, error) {
	return s.Store.ListActive(ctx)
}

// UpdateBaseSalary replaces the base salary and re-derives PF and final payable.
func (s *Service) UpdateBaseSalary(ctx context.Context, id string, newBase int64) (Employee, error) {
	if err := compensation.CheckAmounts(newBase, 0); err != nil {
		return Employee{}, err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	current.Salary = compensation.NewSalary(newBase, current.Salary.Bonus)
	if err := s.Store.UpdateSalary(ctx, id, current.Salary); err != nil {
		return Employee{}, err
	}
	return current, nil
}

func (s *Service) Breakdown(ctx context.Context, id string) (compensation.Breakdown, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return compensation.Breakdown{}, err
	}
	return e.Breakdown(), nil
}
