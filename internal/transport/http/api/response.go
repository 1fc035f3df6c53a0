package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hrdesk/internal/platform/apperr"
	"hrdesk/internal/platform/logger"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", logger.Err(err))
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details any, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidation:       http.StatusBadRequest,
	apperr.KindInvalidDateRange: http.StatusBadRequest,
	apperr.KindUnauthorized:     http.StatusUnauthorized,
	apperr.KindForbidden:        http.StatusForbidden,
	apperr.KindNotFound:         http.StatusNotFound,
	apperr.KindConflict:         http.StatusConflict,
	apperr.KindInvalidState:     http.StatusConflict,
}

// StatusFor maps an error kind to its HTTP status. Unknown kinds are 500.
func StatusFor(kind apperr.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FailError writes err using its apperr kind as the error code. Internal
// errors are logged and reach the client only as a generic message.
func FailError(w http.ResponseWriter, err error, requestID string) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)
	var typed *apperr.Error
	if status == http.StatusInternalServerError || !errors.As(err, &typed) {
		slog.Error("request failed", "requestId", requestID, logger.Err(err))
		Fail(w, http.StatusInternalServerError, string(apperr.KindInternal), "internal server error", requestID)
		return
	}
	Fail(w, status, string(kind), apperr.Message(err), requestID)
}
