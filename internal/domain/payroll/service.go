package payroll

import (
	"context"
	"io"

	"github.com/google/uuid"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/platform/cache"
	"hrdesk/internal/platform/metrics"
)

const cachePrefix = "payslips:"

// EmployeeSource is the employee read side payslip generation needs.
type EmployeeSource interface {
	Get(ctx context.Context, id string) (employee.Employee, error)
	ListActive(ctx context.Context) ([]employee.Employee, error)
}

type Service struct {
	Store     StoreAPI
	Employees EmployeeSource
	Cache     *cache.Cache
	Metrics   *metrics.Metrics
}

func NewService(store StoreAPI, employees EmployeeSource, c *cache.Cache, m *metrics.Metrics) *Service {
	return &Service{Store: store, Employees: employees, Cache: c, Metrics: m}
}

// Generate snapshots every active employee for the period. Employees that
// already have a payslip for it are skipped, so reruns are harmless.
func (s *Service) Generate(ctx context.Context, period Period) (GenerateResult, error) {
	if err := ValidatePeriod(period); err != nil {
		return GenerateResult{}, err
	}
	employees, err := s.Employees.ListActive(ctx)
	if err != nil {
		return GenerateResult{}, err
	}

	snapshots := make([]Payslip, 0, len(employees))
	for _, e := range employees {
		snapshots = append(snapshots, Snapshot(e, period))
	}

	created, err := s.Store.InsertSnapshots(ctx, snapshots)
	if err != nil {
		return GenerateResult{}, err
	}

	result := GenerateResult{Period: period, Created: created, Skipped: len(snapshots) - created}
	if s.Cache != nil {
		s.Cache.InvalidatePrefix(cachePrefix)
	}
	s.Metrics.RecordPayslips(result.Created, result.Skipped)
	return result, nil
}

// ListForEmployee returns the employee's payslips, newest period first.
func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}
	return cache.Load(ctx, s.Cache, cachePrefix+"employee:"+employeeID, func(ctx context.Context) ([]Payslip, error) {
		payslips, err := s.Store.ListByEmployee(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		SortForDisplay(payslips)
		return payslips, nil
	})
}

func (s *Service) Get(ctx context.Context, id string) (Payslip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Payslip{}, ErrPayslipNotFound
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) WritePDF(ctx context.Context, p Payslip, w io.Writer) error {
	e, err := s.Employees.Get(ctx, p.EmployeeID)
	if err != nil {
		return err
	}
	return RenderPDF(w, p, e.Name)
}
