package usershandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	CreateUser(ctx context.Context, in auth.CreateUserInput) (auth.User, error)
	ListUsers(ctx context.Context) ([]auth.User, error)
	AssignRole(ctx context.Context, callerID, userID, role string) (auth.User, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermUsersManage)).Get("/users", h.handleList)
	r.With(middleware.RequirePermission(auth.PermUsersManage)).Post("/users", h.handleCreate)
	r.With(middleware.RequirePermission(auth.PermUsersManage)).Put("/users/{userID}/role", h.handleAssignRole)
}

type roleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, users, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload auth.CreateUserInput
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	user, err := h.Service.CreateUser(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, user, requestID)
}

func (h *Handler) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	caller, _ := middleware.GetUser(r.Context())
	var payload roleRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	user, err := h.Service.AssignRole(r.Context(), caller.UserID, chi.URLParam(r, "userID"), payload.Role)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, user, requestID)
}
