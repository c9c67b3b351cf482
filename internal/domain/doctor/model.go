package doctor

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Weekdays in UTC day-of-week order (0=Sunday..6=Saturday).
var Weekdays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var validWeekday = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Doctor maps to the doctor table. Availability is loaded from the
// doctor_availability table and carried inline on the wire, matching the
// dashboard's document shape.
type Doctor struct {
	ID           uuid.UUID           `db:"id" json:"id"`
	Name         string              `db:"name" json:"name"`
	Specialty    string              `db:"specialty" json:"specialty"`
	Email        string              `db:"email" json:"email"`
	Phone        string              `db:"phone" json:"phone"`
	Availability []*AvailabilitySlot `json:"availability,omitempty"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at" json:"updated_at"`
}

// AvailabilitySlot is one weekly recurring window a doctor accepts
// appointments in. Times are canonical 24-hour "HH:MM" strings; because the
// format is fixed-width, lexicographic comparison orders them correctly.
type AvailabilitySlot struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Day       string    `db:"day" json:"day"`
	StartTime string    `db:"start_time" json:"startTime"`
	EndTime   string    `db:"end_time" json:"endTime"`
}

// Validate checks the slot's weekday name, time format and window ordering.
func (s *AvailabilitySlot) Validate() error {
	if !validWeekday[s.Day] {
		return fmt.Errorf("invalid day: %s", s.Day)
	}
	if !timeOfDayPattern.MatchString(s.StartTime) {
		return fmt.Errorf("invalid start time: %s", s.StartTime)
	}
	if !timeOfDayPattern.MatchString(s.EndTime) {
		return fmt.Errorf("invalid end time: %s", s.EndTime)
	}
	if s.StartTime >= s.EndTime {
		return fmt.Errorf("start time %s must be before end time %s", s.StartTime, s.EndTime)
	}
	return nil
}
