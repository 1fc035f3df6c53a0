package leave

import (
	"context"

	"github.com/google/uuid"

	"hrdesk/internal/platform/cache"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/platform/wiretime"
)

const (
	sourceSelfService = "self_service"
	sourceQuickMark   = "quick_mark"
	sourceHREntry     = "hr_entry"
)

type Service struct {
	Store   StoreAPI
	Cache   *cache.Cache
	Metrics *metrics.Metrics
}

func NewService(store StoreAPI, c *cache.Cache, m *metrics.Metrics) *Service {
	return &Service{Store: store, Cache: c, Metrics: m}
}

func entriesKey(employeeID string) string { return "leave:entries:" + employeeID }
func summaryKey(employeeID string) string { return "leave:summary:" + employeeID }

// Submit records a self-service request as Pending. Nothing reaches the store
// unless the submission is valid.
func (s *Service) Submit(ctx context.Context, sub Submission) (LeaveEntry, error) {
	if err := ValidateSubmission(sub); err != nil {
		return LeaveEntry{}, err
	}
	return s.create(ctx, normalize(sub), StatusPending, sourceSelfService)
}

// QuickMark records a single-day leave on an employee's behalf. It is
// approved immediately.
func (s *Service) QuickMark(ctx context.Context, req QuickMarkRequest) (LeaveEntry, error) {
	sub := req.Submission()
	if err := ValidateSubmission(sub); err != nil {
		return LeaveEntry{}, err
	}
	return s.create(ctx, normalize(sub), StatusApproved, sourceQuickMark)
}

// AddEntry records an approved multi-day leave entered by HR.
func (s *Service) AddEntry(ctx context.Context, employeeID string, start, end wiretime.Nanos, reason string) (LeaveEntry, error) {
	sub := Submission{
		EmployeeID: employeeID,
		StartDate:  &start,
		EndDate:    &end,
		LeaveType:  GeneralLeaveType,
		Reason:     reason,
	}
	if err := ValidateSubmission(sub); err != nil {
		return LeaveEntry{}, err
	}
	return s.create(ctx, normalize(sub), StatusApproved, sourceHREntry)
}

func (s *Service) create(ctx context.Context, sub Submission, status Status, source string) (LeaveEntry, error) {
	if !validID(sub.EmployeeID) {
		return LeaveEntry{}, ErrEmployeeNotFound
	}
	entry, err := s.Store.Create(ctx, LeaveEntry{
		EmployeeID: sub.EmployeeID,
		StartDate:  *sub.StartDate,
		EndDate:    *sub.EndDate,
		LeaveType:  sub.LeaveType,
		Reason:     sub.Reason,
		Status:     status,
		IsOpen:     status == StatusPending,
	})
	if err != nil {
		return LeaveEntry{}, err
	}
	s.invalidate(entry.EmployeeID)
	s.Metrics.RecordLeaveEntry(source)
	return entry, nil
}

func (s *Service) Approve(ctx context.Context, entryID string) (LeaveEntry, error) {
	return s.settle(ctx, entryID, StatusApproved)
}

func (s *Service) Reject(ctx context.Context, entryID string) (LeaveEntry, error) {
	return s.settle(ctx, entryID, StatusRejected)
}

func (s *Service) settle(ctx context.Context, entryID string, status Status) (LeaveEntry, error) {
	if !validID(entryID) {
		return LeaveEntry{}, ErrEntryNotFound
	}
	entry, err := s.Store.Settle(ctx, entryID, status)
	if err != nil {
		return LeaveEntry{}, err
	}
	s.invalidate(entry.EmployeeID)
	return entry, nil
}

func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]LeaveEntry, error) {
	if !validID(employeeID) {
		return nil, ErrEmployeeNotFound
	}
	return cache.Load(ctx, s.Cache, entriesKey(employeeID), func(ctx context.Context) ([]LeaveEntry, error) {
		return s.Store.ListByEmployee(ctx, employeeID)
	})
}

func (s *Service) Summary(ctx context.Context, employeeID string) (LeaveSummary, error) {
	if !validID(employeeID) {
		return LeaveSummary{}, ErrEmployeeNotFound
	}
	return cache.Load(ctx, s.Cache, summaryKey(employeeID), func(ctx context.Context) (LeaveSummary, error) {
		return s.Store.Summary(ctx, employeeID)
	})
}

// validID screens out ids Postgres would reject as malformed uuids.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Service) invalidate(employeeID string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Invalidate(entriesKey(employeeID))
	s.Cache.Invalidate(summaryKey(employeeID))
}
