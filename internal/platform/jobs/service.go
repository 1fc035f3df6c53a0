package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/platform/logger"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/platform/querier"
)

const JobPayslipGeneration = "payslip_generation"

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
)

type PayslipGenerator interface {
	Generate(ctx context.Context, period payroll.Period) (payroll.GenerateResult, error)
}

type Service struct {
	DB       querier.Querier
	Payslips PayslipGenerator
	Metrics  *metrics.Metrics
	Interval time.Duration
	Now      func() time.Time
	queue    chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db querier.Querier, payslips PayslipGenerator, m *metrics.Metrics, interval time.Duration) *Service {
	return &Service{
		DB:       db,
		Payslips: payslips,
		Metrics:  m,
		Interval: interval,
		Now:      time.Now,
		queue:    make(chan job, 128),
	}
}

// Start runs the worker and, when an interval is set, the payslip schedule.
// Both stop when ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Interval > 0 {
		go s.schedulePayslips(ctx, s.Interval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) bool {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
		return true
	default:
		slog.Warn("job queue full", "jobType", jobType)
		return false
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// GeneratePayslips runs a generation for period inline and records it as a job run.
func (s *Service) GeneratePayslips(ctx context.Context, period payroll.Period) (payroll.GenerateResult, error) {
	details, err := s.RunNow(ctx, JobPayslipGeneration, func(ctx context.Context) (any, error) {
		return s.Payslips.Generate(ctx, period)
	})
	if err != nil {
		return payroll.GenerateResult{}, err
	}
	return details.(payroll.GenerateResult), nil
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, logger.Err(err))
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID := uuid.NewString()
	recorded := true
	if _, err := s.DB.Exec(ctx, `
    INSERT INTO job_runs (id, job_type, status)
    VALUES ($1,$2,$3)
  `, runID, j.Type, statusRunning); err != nil {
		recorded = false
		slog.Warn("job run insert failed", "jobType", j.Type, logger.Err(err))
	}

	details, err := j.Run(ctx)
	status := statusCompleted
	if err != nil {
		status = statusFailed
		details = map[string]any{"error": err.Error()}
	}
	s.Metrics.RecordJobRun(j.Type, status)

	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", logger.Err(marshalErr))
		detailsJSON = []byte("{}")
	}
	if recorded {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, details = $2, completed_at = now()
      WHERE id = $3
    `, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "jobType", j.Type, logger.Err(updErr))
		}
	}
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *Service) schedulePayslips(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.enqueuePreviousMonth()
		}
	}
}

// enqueuePreviousMonth queues generation for the month before now. Repeats
// within the same month only skip existing payslips.
func (s *Service) enqueuePreviousMonth() bool {
	period := payroll.PreviousPeriod(s.Now())
	return s.Enqueue(JobPayslipGeneration, func(ctx context.Context) (any, error) {
		return s.Payslips.Generate(ctx, period)
	})
}
