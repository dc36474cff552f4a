package get_available_slots

import (
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ClinicID  int64     // ID клиники
	DentistID *int64    // ID врача (опционально, nil - любой врач)
	ServiceID *int64    // ID услуги (опционально: в публичном флоу услуга может быть ещё не выбрана)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time         // Дата, на которую запрашивались слоты
	ClinicID  int64             // ID клиники
	DentistID *int64            // ID врача (если указан в запросе)
	ServiceID *int64            // ID услуги (если указана в запросе)
	Slots     []domain.TimeSlot // Список слотов с признаком доступности
}
