package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zubkit/ZK-ScheduleService/internal/api/handlers"
	getAvailableSlots "github.com/zubkit/ZK-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgInvalidClinicID = "некорректный ID клиники"
	msgMissingDate     = "дата обязательна"
	msgInvalidParams   = "некорректные параметры запроса, ожидается date=YYYY-MM-DD"
	msgClinicNotFound  = "клиника не найдена"
	msgDentistNotFound = "врач не найден"
	msgServiceNotFound = "услуга не найдена"
	msgInvalidDate     = "некорректная дата"
	msgDateTooFar      = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/available-slots
// Query params: date (required, YYYY-MM-DD), dentistId (optional), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем clinicId из URL
	clinicIDStr := vars["clinicId"]
	clinicID, err := strconv.ParseInt(clinicIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/available-slots - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /clinics/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	dentistIDStr := r.URL.Query().Get("dentistId")
	serviceIDStr := r.URL.Query().Get("serviceId")

	// Формируем запрос к use case (с парсингом даты и опциональных ID)
	useCaseReq, err := ToUseCaseRequest(clinicID, dentistIDStr, serviceIDStr, dateStr)
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrClinicNotFound):
			h.logger.Warn("GET /clinics/{id}/available-slots - Clinic not found: clinic_id=%d", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, getAvailableSlots.ErrDentistNotFound):
			h.logger.Warn("GET /clinics/{id}/available-slots - Dentist not found: clinic_id=%d, dentist_id=%s",
				clinicID, dentistIDStr)
			handlers.RespondNotFound(w, msgDentistNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /clinics/{id}/available-slots - Service not found: clinic_id=%d, service_id=%s",
				clinicID, serviceIDStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /clinics/{id}/available-slots - Invalid date: clinic_id=%d, date=%s", clinicID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /clinics/{id}/available-slots - Date too far in future: clinic_id=%d, date=%s",
				clinicID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /clinics/{id}/available-slots - Invalid input: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /clinics/{id}/available-slots - Failed to get slots: clinic_id=%d, error=%v",
				clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /clinics/{id}/available-slots - Slots retrieved successfully: clinic_id=%d, date=%s, slots_count=%d",
		clinicID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
