package get_clinic_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zubkit/ZK-ScheduleService/internal/api/handlers"
	scheduleService "github.com/zubkit/ZK-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidClinicID = "некорректный ID клиники"
	msgClinicNotFound  = "клиника не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clinicId из URL
	vars := mux.Vars(r)
	clinicIDStr := vars["clinicId"]

	clinicID, err := strconv.ParseInt(clinicIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/schedule - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	// Получаем расписание (при отсутствии вернутся дефолтные настройки)
	schedule, err := h.service.GetForClinic(r.Context(), clinicID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrClinicNotFound):
			h.logger.Warn("GET /clinics/{id}/schedule - Clinic not found: clinic_id=%d", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		default:
			h.logger.Error("GET /clinics/{id}/schedule - Failed to get schedule: clinic_id=%d, error=%v",
				clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clinics/{id}/schedule - Schedule retrieved successfully: clinic_id=%d, is_default=%t",
		clinicID, schedule.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
