package http

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/handler/http/response"
)

type PunchLogHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	GetMyPunches(w http.ResponseWriter, r *http.Request)
	GetMyStatus(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)
}

type punchLogHandlerImpl struct {
	punchService punchlog.PunchLogService
}

func NewPunchLogHandler(punchService punchlog.PunchLogService) PunchLogHandler {
	return &punchLogHandlerImpl{punchService: punchService}
}

// RecordPunch implements PunchLogHandler.
func (h *punchLogHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req punchlog.RecordPunchRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// Parse multipart form (max 5MB selfie)
		if err := r.ParseMultipartForm(5 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		req.Kind = r.FormValue("kind")

		file, fileHeader, err := r.FormFile("selfie")
		if err == nil {
			defer file.Close()
			req.File = file
			req.FileHeader = fileHeader
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	employeeID, _ := claims["employee_id"].(string)

	req.EmployeeID = employeeID
	req.DeviceInfo = r.UserAgent()
	req.IPAddress = clientIP(r)

	result, err := h.punchService.Record(r.Context(), req)
	if err != nil {
		slog.Error("RecordPunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// GetMyPunches implements PunchLogHandler.
func (h *punchLogHandlerImpl) GetMyPunches(w http.ResponseWriter, r *http.Request) {
	filter := punchlog.ListPunchesFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Kind:      r.URL.Query().Get("kind"),
	}

	result, err := h.punchService.GetMyPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyStatus implements PunchLogHandler.
func (h *punchLogHandlerImpl) GetMyStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.punchService.GetMyStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPunches implements PunchLogHandler.
func (h *punchLogHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	filter := punchlog.ListPunchesFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		Kind:       r.URL.Query().Get("kind"),
	}

	result, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeletePunch implements PunchLogHandler.
func (h *punchLogHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.punchService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}

// clientIP prefers the first X-Forwarded-For hop when the service runs
// behind a reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
