package domain

// ColorClass is the visual treatment of an appointment on the day grid
type ColorClass string

const (
	ColorScheduled ColorClass = "scheduled"
	ColorConfirmed ColorClass = "confirmed"
	ColorCompleted ColorClass = "completed"
	ColorCancelled ColorClass = "cancelled"
	ColorNoShow    ColorClass = "no_show"
)

// StatusColorClass maps an appointment status to its grid color.
// The mapping is exhaustive over the status enum; anything unrecognized
// falls back to the scheduled treatment.
func StatusColorClass(status AppointmentStatus) ColorClass {
	switch status {
	case StatusScheduled:
		return ColorScheduled
	case StatusConfirmed:
		return ColorConfirmed
	case StatusCompleted:
		return ColorCompleted
	case StatusCancelledByPatient, StatusCancelledByClinic:
		return ColorCancelled
	case StatusNoShow:
		return ColorNoShow
	default:
		return ColorScheduled
	}
}
