package get_clinic_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zubkit/ZK-ScheduleService/internal/api/handlers"
	"github.com/zubkit/ZK-ScheduleService/internal/api/middleware"
	"github.com/zubkit/ZK-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidClinicID = "некорректный ID клиники"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidParams   = "некорректные параметры запроса"
	msgClinicNotFound  = "клиника не найдена"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/appointments
// Query params: dentistId, status, date, startDate, endDate, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clinicId из URL
	vars := mux.Vars(r)
	clinicIDStr := vars["clinicId"]

	clinicID, err := strconv.ParseInt(clinicIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/appointments - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /clinics/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(clinicID, userID,
		query.Get("dentistId"), query.Get("status"), query.Get("date"),
		query.Get("startDate"), query.Get("endDate"), query.Get("includeInactive"))
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем записи клиники (сервис сам проверит права менеджера)
	result, err := h.service.GetClinicAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrClinicNotFound):
			h.logger.Warn("GET /clinics/{id}/appointments - Clinic not found: clinic_id=%d", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /clinics/{id}/appointments - Access denied: clinic_id=%d, user_id=%d",
				clinicID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /clinics/{id}/appointments - Invalid parameters: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /clinics/{id}/appointments - Failed to get appointments: clinic_id=%d, error=%v",
				clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clinics/{id}/appointments - Appointments retrieved successfully: clinic_id=%d, count=%d",
		clinicID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
