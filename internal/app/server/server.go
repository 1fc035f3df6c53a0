package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/contact"
	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/jobrole"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/task"
	"hrdesk/internal/platform/cache"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/db"
	"hrdesk/internal/platform/jobs"
	"hrdesk/internal/platform/logger"
	"hrdesk/internal/platform/metrics"
	authhandler "hrdesk/internal/transport/http/handlers/auth"
	contacthandler "hrdesk/internal/transport/http/handlers/contact"
	employeeshandler "hrdesk/internal/transport/http/handlers/employees"
	jobroleshandler "hrdesk/internal/transport/http/handlers/jobroles"
	leavehandler "hrdesk/internal/transport/http/handlers/leave"
	payrollhandler "hrdesk/internal/transport/http/handlers/payroll"
	taskshandler "hrdesk/internal/transport/http/handlers/tasks"
	usershandler "hrdesk/internal/transport/http/handlers/users"
)

type App struct {
	Config config.Config
	Logger *slog.Logger
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Cache  *cache.Cache
	Jobs   *jobs.Service
	Router http.Handler
}

// New connects to the database, applies migrations and seed data as
// configured, and wires every service behind the router.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	m := metrics.New()
	c := cache.New()
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = cache.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			pool.Close()
			return nil, err
		}
		c = cache.NewRedis(rdb, cfg.CacheTTL)
		log.Info("query cache backed by redis")
	}

	authService := auth.NewService(auth.NewStore(pool), cfg.JWTSecret, cfg.TokenTTL)
	employeeService := employee.NewService(employee.NewStore(pool), cfg.DefaultLeaveBalance)
	leaveService := leave.NewService(leave.NewStore(pool), c, m)
	payrollService := payroll.NewService(payroll.NewStore(pool), employeeService, c, m)
	jobsService := jobs.New(pool, payrollService, m, cfg.PayslipScheduleInterval)

	router := NewRouter(RouteDeps{
		Config:        cfg,
		Logger:        log,
		Metrics:       m,
		Authenticator: authService,
		Ready:         pool.Ping,
		Auth:          authhandler.NewHandler(authService),
		Users:         usershandler.NewHandler(authService),
		Employees:     employeeshandler.NewHandler(employeeService, authService),
		Leave:         leavehandler.NewHandler(leaveService),
		Payroll:       payrollhandler.NewHandler(payrollService, jobsService),
		Tasks:         taskshandler.NewHandler(task.NewService(task.NewStore(pool))),
		JobRoles:      jobroleshandler.NewHandler(jobrole.NewService(jobrole.NewStore(pool), c)),
		Contact:       contacthandler.NewHandler(contact.NewService(contact.NewStore(pool))),
	})

	return &App{Config: cfg, Logger: log, DB: pool, Redis: rdb, Cache: c, Jobs: jobsService, Router: router}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	a.Jobs.Start(ctx)

	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("hrdesk server listening", "addr", a.Config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("graceful shutdown failed", logger.Err(err))
		return err
	}
	return nil
}

func (a *App) Close() {
	a.Cache.Close()
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("close redis failed", logger.Err(err))
		}
	}
	a.DB.Close()
}
