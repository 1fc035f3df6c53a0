package employeeshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/compensation"
	"hrdesk/internal/domain/employee"
	"hrdesk/internal/platform/wireint"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	Create(ctx context.Context, in employee.CreateInput) (employee.Employee, error)
	Get(ctx context.Context, id string) (employee.Employee, error)
	List(ctx context.Context) ([]employee.Employee, error)
	UpdateBaseSalary(ctx context.Context, id string, newBase int64) (employee.Employee, error)
	Breakdown(ctx context.Context, id string) (compensation.Breakdown, error)
}

// Associator links a login account to an employee record.
type Associator interface {
	AssociateEmployee(ctx context.Context, userID, employeeID string) error
}

type Handler struct {
	Service    Service
	Associator Associator
}

func NewHandler(service Service, associator Associator) *Handler {
	return &Handler{Service: service, Associator: associator}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermEmployeesList)).Get("/employees", h.handleList)
	r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/employees", h.handleCreate)
	r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/employees/{employeeID}", h.handleGet)
	r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Put("/employees/{employeeID}/salary", h.handleUpdateSalary)
	r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/employees/{employeeID}/salary/breakdown", h.handleBreakdown)
	r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/employees/{employeeID}/associate", h.handleAssociate)
}

type salaryRequest struct {
	BaseSalary *wireint.Int `json:"baseSalary" validate:"required,gte=0"`
}

type associateRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.List(r.Context())
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload employee.CreateInput
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !shared.AuthorizeEmployee(w, r, employeeID) {
		return
	}
	emp, err := h.Service.Get(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleUpdateSalary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload salaryRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	updated, err := h.Service.UpdateBaseSalary(r.Context(), chi.URLParam(r, "employeeID"), payload.BaseSalary.Int64())
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !shared.AuthorizeEmployee(w, r, employeeID) {
		return
	}
	breakdown, err := h.Service.Breakdown(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, breakdown, requestID)
}

func (h *Handler) handleAssociate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload associateRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if _, err := h.Service.Get(r.Context(), employeeID); err != nil {
		api.FailError(w, err, requestID)
		return
	}
	if err := h.Associator.AssociateEmployee(r.Context(), payload.UserID, employeeID); err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"userId": payload.UserID, "employeeId": employeeID}, requestID)
}
