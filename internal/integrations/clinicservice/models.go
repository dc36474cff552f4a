package clinicservice

// Clinic модель клиники из ClinicService
type Clinic struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Timezone   string    `json:"timezone"`
	ManagerIDs []int64   `json:"manager_ids"`
	Dentists   []Dentist `json:"dentists"`
}

// Dentist модель врача клиники
type Dentist struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	IsActive  bool   `json:"is_active"`
}

// Service модель услуги клиники (стоматологическая процедура)
type Service struct {
	ID              int64    `json:"id"`
	ClinicID        int64    `json:"clinic_id"`
	Title           string   `json:"title"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        bool     `json:"is_active"`
}

// ErrorResponse модель ошибки от ClinicService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
