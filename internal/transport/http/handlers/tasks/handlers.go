package taskshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/task"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	Create(ctx context.Context, in task.Input) (task.Task, error)
	Update(ctx context.Context, id string, in task.Input) (task.Task, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (task.Task, error)
	List(ctx context.Context) ([]task.Task, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]task.Task, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermTasksManage)).Get("/tasks", h.handleList)
	r.With(middleware.RequirePermission(auth.PermTasksManage)).Post("/tasks", h.handleCreate)
	r.With(middleware.RequirePermission(auth.PermTasksManage)).Get("/tasks/{taskID}", h.handleGet)
	r.With(middleware.RequirePermission(auth.PermTasksManage)).Put("/tasks/{taskID}", h.handleUpdate)
	r.With(middleware.RequirePermission(auth.PermTasksManage)).Delete("/tasks/{taskID}", h.handleDelete)
	r.With(middleware.RequirePermission(auth.PermTasksSelf)).Get("/me/tasks", h.handleMyTasks)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	tasks, err := h.Service.List(r.Context())
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, tasks, requestID)
}

func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (task.Input, bool) {
	requestID := middleware.GetRequestID(r.Context())
	var payload task.Input
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return task.Input{}, false
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return task.Input{}, false
	}
	return payload, true
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	payload, ok := h.decodeInput(w, r)
	if !ok {
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
	t, err := h.Service.Get(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, t, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	payload, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "taskID"), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	taskID := chi.URLParam(r, "taskID")
	if err := h.Service.Delete(r.Context(), taskID); err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"id": taskID}, requestID)
}

func (h *Handler) handleMyTasks(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID, ok := shared.SelfEmployeeID(w, r)
	if !ok {
		return
	}
	tasks, err := h.Service.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, tasks, requestID)
}
