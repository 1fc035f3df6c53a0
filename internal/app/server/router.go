package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/metrics"
	authhandler "hrdesk/internal/transport/http/handlers/auth"
	contacthandler "hrdesk/internal/transport/http/handlers/contact"
	employeeshandler "hrdesk/internal/transport/http/handlers/employees"
	jobroleshandler "hrdesk/internal/transport/http/handlers/jobroles"
	leavehandler "hrdesk/internal/transport/http/handlers/leave"
	payrollhandler "hrdesk/internal/transport/http/handlers/payroll"
	taskshandler "hrdesk/internal/transport/http/handlers/tasks"
	usershandler "hrdesk/internal/transport/http/handlers/users"
	"hrdesk/internal/transport/http/middleware"
)

// RouteDeps is everything the HTTP router is assembled from.
type RouteDeps struct {
	Config        config.Config
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	Authenticator middleware.Authenticator
	Ready         func(ctx context.Context) error

	Auth      *authhandler.Handler
	Users     *usershandler.Handler
	Employees *employeeshandler.Handler
	Leave     *leavehandler.Handler
	Payroll   *payrollhandler.Handler
	Tasks     *taskshandler.Handler
	JobRoles  *jobroleshandler.Handler
	Contact   *contacthandler.Handler
}

func NewRouter(d RouteDeps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(d.Logger, d.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(d.Config.Environment == "production"))
	router.Use(middleware.BodyLimit(d.Config.MaxBodyBytes))
	router.Use(middleware.Auth(d.Authenticator))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := d.Ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if d.Config.MetricsEnabled && d.Metrics != nil {
		router.Handle("/metrics", d.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.RateLimit(d.Config.LoginRatePerMinute, nil)).Post("/auth/login", d.Auth.HandleLogin)
		r.With(middleware.RequireUser).Get("/me", d.Auth.HandleMe)
		r.With(middleware.RequireUser).Put("/me/profile", d.Auth.HandleSaveProfile)
		r.With(middleware.RateLimit(d.Config.ContactRatePerMinute, nil)).Post("/contact", d.Contact.HandleSubmit)

		d.Users.RegisterRoutes(r)
		d.Employees.RegisterRoutes(r)
		d.Leave.RegisterRoutes(r)
		d.Payroll.RegisterRoutes(r)
		d.Tasks.RegisterRoutes(r)
		d.JobRoles.RegisterRoutes(r)
		d.Contact.RegisterRoutes(r)
	})

	return router
}
