package contacthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/contact"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	Submit(ctx context.Context, in contact.SubmitInput) (contact.Message, error)
	List(ctx context.Context) ([]contact.Message, error)
	Get(ctx context.Context, id string) (contact.Message, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the admin inbox. The public form is mounted by the
// router behind its own rate limit.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermContactRead)).Get("/contact-messages", h.handleList)
	r.With(middleware.RequirePermission(auth.PermContactRead)).Get("/contact-messages/{messageID}", h.handleGet)
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload contact.SubmitInput
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	m, err := h.Service.Submit(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, map[string]string{"id": m.ID}, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	messages, err := h.Service.List(r.Context())
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, messages, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	m, err := h.Service.Get(r.Context(), chi.URLParam(r, "messageID"))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, m, requestID)
}
