package get_day_grid

import (
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// DefaultPixelsPerSlot высота одного слота сетки в пикселях по умолчанию
const DefaultPixelsPerSlot = 40

// Request модель запроса на получение дневной сетки расписания
type Request struct {
	UserID        int64     // ID пользователя (должен быть менеджером клиники)
	ClinicID      int64     // ID клиники
	Date          time.Time // Дата, для которой строится сетка
	PixelsPerSlot *int      // Высота слота в пикселях (опционально, по умолчанию 40)
}

// Response модель ответа с дневной сеткой расписания
type Response struct {
	Date                time.Time        // Дата сетки
	ClinicID            int64            // ID клиники
	OpeningTime         types.TimeString // Время открытия
	ClosingTime         types.TimeString // Время закрытия
	SlotDurationMinutes int              // Длительность слота
	PixelsPerSlot       int              // Высота слота в пикселях
	GridLines           []GridLine       // Горизонтальные линии сетки
	Columns             []DentistColumn  // Колонки по врачам
}

// GridLine горизонтальная линия сетки на границе слота
type GridLine struct {
	Time types.TimeString // Время на границе слота
	Top  float64          // Вертикальное смещение в пикселях
}

// DentistColumn колонка сетки для одного врача
type DentistColumn struct {
	DentistID   int64           // ID врача
	DentistName string          // Имя врача
	Specialty   string          // Специализация
	Events      []CalendarEvent // События в колонке
}

// CalendarEvent спозиционированное событие в колонке врача
type CalendarEvent struct {
	AppointmentID   int64             // ID записи на приём
	PatientName     *string           // Имя пациента (nil при деградации PatientService)
	ServiceTitle    string            // Название услуги
	StartTime       types.TimeString  // Время начала
	EndTime         types.TimeString  // Время окончания
	DurationMinutes int               // Длительность в минутах
	Status          string            // Статус записи
	ColorClass      domain.ColorClass // CSS-класс цвета по статусу
	Top             float64           // Вертикальное смещение в пикселях
	Height          float64           // Высота в пикселях
}
