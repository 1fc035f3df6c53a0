package jobroleshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/jobrole"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	Create(ctx context.Context, in jobrole.CreateInput) (jobrole.JobRole, error)
	ListOpen(ctx context.Context) ([]jobrole.JobRole, error)
	CountOpen(ctx context.Context) (jobrole.OpenCount, error)
	Close(ctx context.Context, id string) (jobrole.JobRole, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the careers listing. Reads are public.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/job-roles", h.handleListOpen)
	r.Get("/job-roles/count", h.handleCountOpen)
	r.With(middleware.RequirePermission(auth.PermJobRolesWrite)).Post("/job-roles", h.handleCreate)
	r.With(middleware.RequirePermission(auth.PermJobRolesWrite)).Post("/job-roles/{jobRoleID}/close", h.handleClose)
}

func (h *Handler) handleListOpen(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	roles, err := h.Service.ListOpen(r.Context())
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, roles, requestID)
}

func (h *Handler) handleCountOpen(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	count, err := h.Service.CountOpen(r.Context())
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, count, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload jobrole.CreateInput
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

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	closed, err := h.Service.Close(r.Context(), chi.URLParam(r, "jobRoleID"))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, closed, requestID)
}
