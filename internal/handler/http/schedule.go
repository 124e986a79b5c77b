package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
	"github.com/qrmesai/qrmesai-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	UpsertSchedule(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	ListSchedules(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.WorkScheduleService
}

func NewScheduleHandler(scheduleService schedule.WorkScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// UpsertSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpsertSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.DepartmentID = chi.URLParam(r, "departmentID")

	result, err := h.scheduleService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule saved", result)
}

// GetSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")

	result, err := h.scheduleService.GetByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSchedules implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListSchedules(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")

	if err := h.scheduleService.Delete(r.Context(), departmentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule removed", nil)
}
