package payrollhandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/platform/logger"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Service interface {
	ListForEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error)
	Get(ctx context.Context, id string) (payroll.Payslip, error)
	WritePDF(ctx context.Context, p payroll.Payslip, w io.Writer) error
}

// Generator runs a payslip generation and records it as a job run.
type Generator interface {
	GeneratePayslips(ctx context.Context, period payroll.Period) (payroll.GenerateResult, error)
}

type Handler struct {
	Service   Service
	Generator Generator
}

func NewHandler(service Service, generator Generator) *Handler {
	return &Handler{Service: service, Generator: generator}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermPayrollRun)).Post("/payslips/generate", h.handleGenerate)
	r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/payslips/{payslipID}", h.handleGet)
	r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/payslips/{payslipID}/pdf", h.handlePDF)
	r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/employees/{employeeID}/payslips", h.handleListForEmployee)
	r.With(middleware.RequirePermission(auth.PermPayrollSelf)).Get("/me/payslips", h.handleMyPayslips)
}

type generateRequest struct {
	Month *int `json:"month" validate:"required"`
	Year  *int `json:"year" validate:"required"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload generateRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}

	result, err := h.Generator.GeneratePayslips(r.Context(), payroll.Period{Month: *payload.Month, Year: *payload.Year})
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) handleListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !shared.AuthorizeEmployee(w, r, employeeID) {
		return
	}
	h.writeList(w, r, employeeID)
}

func (h *Handler) handleMyPayslips(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := shared.SelfEmployeeID(w, r)
	if !ok {
		return
	}
	h.writeList(w, r, employeeID)
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, employeeID string) {
	requestID := middleware.GetRequestID(r.Context())
	payslips, err := h.Service.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, payslips, requestID)
}

// loadAuthorized fetches the payslip and checks the caller may see its owner.
func (h *Handler) loadAuthorized(w http.ResponseWriter, r *http.Request) (payroll.Payslip, bool) {
	requestID := middleware.GetRequestID(r.Context())
	payslip, err := h.Service.Get(r.Context(), chi.URLParam(r, "payslipID"))
	if err != nil {
		api.FailError(w, err, requestID)
		return payroll.Payslip{}, false
	}
	if !shared.AuthorizeEmployee(w, r, payslip.EmployeeID) {
		return payroll.Payslip{}, false
	}
	return payslip, true
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	payslip, ok := h.loadAuthorized(w, r)
	if !ok {
		return
	}
	api.Success(w, payslip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	payslip, ok := h.loadAuthorized(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.Service.WritePDF(r.Context(), payslip, &buf); err != nil {
		api.FailError(w, err, requestID)
		return
	}

	filename := fmt.Sprintf("payslip-%d-%02d.pdf", payslip.Year, payslip.Month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write payslip pdf failed", "payslipId", payslip.ID, logger.Err(err))
	}
}
