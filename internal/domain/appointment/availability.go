package appointment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/medidash/medidash/internal/domain/doctor"
)

var time24Pattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// twelveHourLayouts accepted by NormalizeTime, tried in order.
var twelveHourLayouts = []string{"3:04 PM", "03:04 PM", "3:04PM", "03:04PM"}

// NormalizeTime converts a clock-time string to canonical 24-hour "HH:MM".
// Already-canonical input passes through; "h:mm AM/PM" variants are parsed.
func NormalizeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if time24Pattern.MatchString(s) {
		return s, nil
	}
	upper := strings.ToUpper(s)
	for _, layout := range twelveHourLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time: %s", s)
}

// AvailabilityResult is the outcome of matching a requested date and time
// against a doctor's weekly recurring windows.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// CheckAvailability matches a requested visit against a doctor's weekly
// windows. The weekday is resolved from the date in UTC, and a window matches
// when timeOfDay >= StartTime && timeOfDay < EndTime (half-open, so the end
// minute itself is unavailable). The fixed-width "HH:MM" format makes
// lexicographic comparison correct. The check is advisory: it never looks at
// existing bookings.
func CheckAvailability(slots []*doctor.AvailabilitySlot, date, timeOfDay string) (AvailabilityResult, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return AvailabilityResult{}, fmt.Errorf("invalid date: %s", date)
	}
	if !time24Pattern.MatchString(timeOfDay) {
		return AvailabilityResult{}, fmt.Errorf("invalid time: %s", timeOfDay)
	}

	if len(slots) == 0 {
		return AvailabilityResult{Message: "Doctor has not set their availability."}, nil
	}

	weekday := day.UTC().Weekday().String()
	var daySlots []*doctor.AvailabilitySlot
	for _, s := range slots {
		if s.Day == weekday {
			daySlots = append(daySlots, s)
		}
	}
	if len(daySlots) == 0 {
		return AvailabilityResult{Message: fmt.Sprintf("Doctor is not available on %ss.", weekday)}, nil
	}

	ranges := make([]string, 0, len(daySlots))
	for _, s := range daySlots {
		if timeOfDay >= s.StartTime && timeOfDay < s.EndTime {
			return AvailabilityResult{Available: true, Message: "Doctor is available at this time."}, nil
		}
		ranges = append(ranges, s.StartTime+"-"+s.EndTime)
	}
	return AvailabilityResult{
		Message: fmt.Sprintf("Not available. Available slots on %ss: %s", weekday, strings.Join(ranges, ", ")),
	}, nil
}
