package delete_clinic_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zubkit/ZK-ScheduleService/internal/api/handlers"
	"github.com/zubkit/ZK-ScheduleService/internal/api/middleware"
	scheduleService "github.com/zubkit/ZK-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidClinicID  = "некорректный ID клиники"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgClinicNotFound   = "клиника не найдена"
	msgScheduleNotFound = "расписание клиники не найдено"
	msgForbidden        = "доступ запрещен"
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

// Handle DELETE /api/v1/clinics/{clinicId}/schedule
// Удаляет настроенное расписание - клиника возвращается к дефолтным настройкам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clinicId из URL
	vars := mux.Vars(r)
	clinicIDStr := vars["clinicId"]

	clinicID, err := strconv.ParseInt(clinicIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /clinics/{id}/schedule - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /clinics/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем расписание (сервис сам проверит права менеджера)
	if err := h.service.Delete(r.Context(), clinicID, userID); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrClinicNotFound):
			h.logger.Warn("DELETE /clinics/{id}/schedule - Clinic not found: clinic_id=%d", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, scheduleService.ErrScheduleNotFound):
			h.logger.Warn("DELETE /clinics/{id}/schedule - Schedule not found: clinic_id=%d", clinicID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("DELETE /clinics/{id}/schedule - Access denied: clinic_id=%d, user_id=%d", clinicID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /clinics/{id}/schedule - Failed to delete schedule: clinic_id=%d, error=%v",
				clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clinics/{id}/schedule - Schedule deleted successfully: clinic_id=%d, user_id=%d",
		clinicID, userID)
	handlers.RespondNoContent(w)
}
