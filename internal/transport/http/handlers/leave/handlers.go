package leavehandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/platform/wiretime"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	Submit(ctx context.Context, sub leave.Submission) (leave.LeaveEntry, error)
	QuickMark(ctx context.Context, req leave.QuickMarkRequest) (leave.LeaveEntry, error)
	AddEntry(ctx context.Context, employeeID string, start, end wiretime.Nanos, reason string) (leave.LeaveEntry, error)
	Approve(ctx context.Context, entryID string) (leave.LeaveEntry, error)
	Reject(ctx context.Context, entryID string) (leave.LeaveEntry, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveEntry, error)
	Summary(ctx context.Context, employeeID string) (leave.LeaveSummary, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermLeaveRead)).Get("/employees/{employeeID}/leave", h.handleList)
	r.With(middleware.RequirePermission(auth.PermLeaveRead)).Get("/employees/{employeeID}/leave/balance", h.handleSummary)
	r.With(middleware.RequirePermission(auth.PermLeaveWrite)).Post("/employees/{employeeID}/leave", h.handleAddEntry)
	r.With(middleware.RequirePermission(auth.PermLeaveWrite)).Post("/leave/quick-mark", h.handleQuickMark)
	r.With(middleware.RequirePermission(auth.PermLeaveApprove)).Post("/leave/{entryID}/approve", h.handleApprove)
	r.With(middleware.RequirePermission(auth.PermLeaveApprove)).Post("/leave/{entryID}/reject", h.handleReject)
	r.With(middleware.RequirePermission(auth.PermLeaveSelf)).Get("/me/leave", h.handleMyLeave)
	r.With(middleware.RequirePermission(auth.PermLeaveSelf)).Post("/me/leave", h.handleSubmit)
}

type addEntryRequest struct {
	StartDate *wiretime.Nanos `json:"startDate" validate:"required"`
	EndDate   *wiretime.Nanos `json:"endDate" validate:"required"`
	Reason    string          `json:"reason" validate:"required"`
}

type myLeaveResponse struct {
	Entries []leave.LeaveEntry `json:"entries"`
	Summary leave.LeaveSummary `json:"summary"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !shared.AuthorizeEmployee(w, r, employeeID) {
		return
	}
	entries, err := h.Service.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, entries, requestID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !shared.AuthorizeEmployee(w, r, employeeID) {
		return
	}
	summary, err := h.Service.Summary(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, summary, requestID)
}

// handleAddEntry records an HR-entered range. Range errors come back from the
// service so the client sees invalid_date_range rather than a field list.
func (h *Handler) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload addEntryRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	entry, err := h.Service.AddEntry(r.Context(), chi.URLParam(r, "employeeID"), *payload.StartDate, *payload.EndDate, payload.Reason)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, entry, requestID)
}

func (h *Handler) handleQuickMark(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload leave.QuickMarkRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	entry, err := h.Service.QuickMark(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, entry, requestID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.Service.Reject)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (leave.LeaveEntry, error)) {
	requestID := middleware.GetRequestID(r.Context())
	entry, err := fn(r.Context(), chi.URLParam(r, "entryID"))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, entry, requestID)
}

func (h *Handler) handleMyLeave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID, ok := shared.SelfEmployeeID(w, r)
	if !ok {
		return
	}
	entries, err := h.Service.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	summary, err := h.Service.Summary(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, myLeaveResponse{Entries: entries, Summary: summary}, requestID)
}

// handleSubmit files a pending request for the caller. Any employeeId in the
// body is replaced with the caller's own record.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID, ok := shared.SelfEmployeeID(w, r)
	if !ok {
		return
	}
	var payload leave.Submission
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	payload.EmployeeID = employeeID

	entry, err := h.Service.Submit(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, entry, requestID)
}
