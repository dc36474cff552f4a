package get_clinic_appointments

import (
	"strconv"
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров.
// Параметр date задает записи на один день, startDate/endDate - за период.
func ToServiceRequest(clinicID, userID int64, dentistIDStr, statusStr, dateStr, startDateStr, endDateStr, includeInactiveStr string) (*models.GetClinicAppointmentsRequest, error) {
	req := &models.GetClinicAppointmentsRequest{
		UserID:   userID,
		ClinicID: clinicID,
	}

	if dentistIDStr != "" {
		dentistID, err := strconv.ParseInt(dentistIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.DentistID = &dentistID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	// date имеет приоритет над периодом
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startDateStr != "" {
			startDate, err := time.Parse(domain.DateFormat, startDateStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &startDate
		}
		if endDateStr != "" {
			endDate, err := time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = &endDate
		}
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
