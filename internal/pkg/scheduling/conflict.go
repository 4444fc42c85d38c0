package scheduling

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/salonhub/salonhub/app/models"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ErrCrossesMidnight is returned when start plus duration runs past 23:59.
// Bookings never roll into the next calendar day.
var ErrCrossesMidnight = errors.New("appointment would cross midnight")

// ValidTime reports whether s is a zero-padded "HH:mm" clock time.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// EndTime adds a duration in minutes to a "HH:mm" start, rolling minute
// overflow into hours.
func EndTime(start string, durationMinutes int) (string, error) {
	if !ValidTime(start) {
		return "", fmt.Errorf("invalid start time %q", start)
	}
	if durationMinutes <= 0 {
		return "", fmt.Errorf("invalid duration %d", durationMinutes)
	}

	var h, m int
	fmt.Sscanf(start, "%d:%d", &h, &m)
	total := h*60 + m + durationMinutes
	if total >= 24*60 {
		return "", ErrCrossesMidnight
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// Overlaps applies the booking conflict rule: the new start falls inside an
// existing [start,end) interval, or the new end falls inside an existing
// (start,end] interval. Touching boundaries are not overlap. Comparison is
// on "HH:mm" strings, which matches numeric minute order because of the
// fixed zero-padded width.
func Overlaps(newStart, newEnd, existingStart, existingEnd string) bool {
	if newStart >= existingStart && newStart < existingEnd {
		return true
	}
	if newEnd > existingStart && newEnd <= existingEnd {
		return true
	}
	return false
}

// FindConflict scans the professional's existing non-cancelled appointments
// for one overlapping [newStart,newEnd). Returns nil when the placement is
// free. excludeID names an appointment that never counts as a conflict; a
// move passes its own ID so the vacated window cannot mask a collision with
// a different appointment. Pass 0 when creating.
func FindConflict(appts []models.Appointment, professionalID, excludeID uint, newStart, newEnd string) *models.Appointment {
	for i := range appts {
		a := &appts[i]
		if a.IsCancelled() || a.ProfessionalID != professionalID || a.ID == excludeID {
			continue
		}
		if Overlaps(newStart, newEnd, a.StartTime, a.EndTime) {
			return a
		}
	}
	return nil
}
