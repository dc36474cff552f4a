package get_day_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zubkit/ZK-ScheduleService/internal/api/handlers"
	"github.com/zubkit/ZK-ScheduleService/internal/api/middleware"
	getDayGrid "github.com/zubkit/ZK-ScheduleService/internal/usecase/get_day_grid"
)

const (
	msgInvalidClinicID    = "некорректный ID клиники"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingDate        = "дата обязательна"
	msgInvalidParams      = "некорректные параметры запроса"
	msgClinicNotFound     = "клиника не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidScheduleCfg = "расписание клиники настроено некорректно"
)

type Handler struct {
	useCase GetDayGridUseCase
	logger  Logger
}

func NewHandler(useCase GetDayGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/day-grid
// Query params: date (required, YYYY-MM-DD), pixelsPerSlot (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем clinicId из URL
	clinicIDStr := vars["clinicId"]
	clinicID, err := strconv.ParseInt(clinicIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/day-grid - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /clinics/{id}/day-grid - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /clinics/{id}/day-grid - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(clinicID, userID, dateStr, r.URL.Query().Get("pixelsPerSlot"))
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/day-grid - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayGrid.ErrClinicNotFound):
			h.logger.Warn("GET /clinics/{id}/day-grid - Clinic not found: clinic_id=%d", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, getDayGrid.ErrAccessDenied):
			h.logger.Warn("GET /clinics/{id}/day-grid - Access denied: clinic_id=%d, user_id=%d", clinicID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getDayGrid.ErrInvalidScheduleConfig):
			h.logger.Error("GET /clinics/{id}/day-grid - Invalid schedule config: clinic_id=%d", clinicID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidScheduleCfg)

		case errors.Is(err, getDayGrid.ErrInvalidInput):
			h.logger.Warn("GET /clinics/{id}/day-grid - Invalid input: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /clinics/{id}/day-grid - Failed to build grid: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /clinics/{id}/day-grid - Grid built successfully: clinic_id=%d, date=%s, columns=%d",
		clinicID, dateStr, len(result.Columns))
	handlers.RespondJSON(w, http.StatusOK, response)
}
