package create_appointment

import (
	"errors"
	"net/http"

	"github.com/zubkit/ZK-ScheduleService/internal/api/handlers"
	"github.com/zubkit/ZK-ScheduleService/internal/api/middleware"
	createAppointment "github.com/zubkit/ZK-ScheduleService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgClinicNotFound     = "клиника не найдена"
	msgDentistNotFound    = "врач не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgPatientNotFound    = "пациент не найден"
	msgClinicClosed       = "клиника не работает в выбранную дату"
	msgInvalidDate        = "некорректная дата записи"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgInvalidTimeSlot    = "время не попадает в сетку расписания"
	msgTooLateToBook      = "слишком поздно для записи на этот слот"
	msgInvalidScheduleCfg = "расписание клиники настроено некорректно"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем patientID из контекста (через middleware Auth)
	patientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(patientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: patient_id=%d, clinic_id=%d", patientID, req.ClinicID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrClinicNotFound):
			h.logger.Warn("POST /appointments - Clinic not found: clinic_id=%d", req.ClinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, createAppointment.ErrDentistNotFound):
			h.logger.Warn("POST /appointments - Dentist not found: clinic_id=%d, dentist_id=%v", req.ClinicID, req.DentistID)
			handlers.RespondNotFound(w, msgDentistNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: clinic_id=%d, service_id=%d", req.ClinicID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrPatientNotFound):
			h.logger.Warn("POST /appointments - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, createAppointment.ErrClinicClosed):
			h.logger.Warn("POST /appointments - Clinic closed: clinic_id=%d, date=%s", req.ClinicID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgClinicClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid appointment date: patient_id=%d, clinic_id=%d", patientID, req.ClinicID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: patient_id=%d, clinic_id=%d", patientID, req.ClinicID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: patient_id=%d, clinic_id=%d, time=%s",
				patientID, req.ClinicID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: patient_id=%d, clinic_id=%d", patientID, req.ClinicID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidScheduleConfig):
			h.logger.Error("POST /appointments - Invalid schedule config: clinic_id=%d", req.ClinicID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidScheduleCfg)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: patient_id=%d, error=%v", patientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: patient_id=%d, clinic_id=%d, error=%v",
				patientID, req.ClinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, patient_id=%d, clinic_id=%d",
		result.ID, patientID, req.ClinicID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
