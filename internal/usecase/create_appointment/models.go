package create_appointment

import (
	"time"

	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// Request модель запроса на создание записи на приём
type Request struct {
	PatientID int64            // ID пациента
	ClinicID  int64            // ID клиники
	DentistID *int64           // ID врача (опционально: публичная запись может быть без выбора врача)
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	PatientID       int64            // ID пациента
	ClinicID        int64            // ID клиники
	DentistID       *int64           // ID врача
	ServiceID       int64            // ID услуги
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные
	ServiceTitle string  // Название услуги
	ServicePrice float64 // Цена услуги
	PatientName  *string // Имя пациента (nil при деградации PatientService)
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
