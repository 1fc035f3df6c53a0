package authhandler

import (
	"context"
	"net/http"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	Login(ctx context.Context, email, password string) (auth.LoginResult, error)
	Me(ctx context.Context, userID string) (auth.User, error)
	SaveProfile(ctx context.Context, userID, name string) (auth.User, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	Name string `json:"name"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload loginRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	result, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	profile, err := h.Service.Me(r.Context(), user.UserID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, profile, requestID)
}

func (h *Handler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	var payload profileRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	profile, err := h.Service.SaveProfile(r.Context(), user.UserID, payload.Name)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, profile, requestID)
}
