// Package scheduling computes bookable capacity and validates appointment
// placements. Times are zero-padded "HH:mm" strings; the fixed width makes
// lexicographic comparison equivalent to minute-of-day comparison.
//
// Known limitation: professional availability matches on exact start time
// only, not interval overlap. A professional in a 60 minute appointment
// starting at 14:00 is still listed as available at 14:30. The coarse slot
// view and the conflict check on create are the guards against actual
// double-booking.
package scheduling

import "github.com/salonhub/salonhub/app/models"

// SlotCatalog is the fixed hourly grid shown to booking clients. It is a
// static list, independent of the salon's configured business hours.
var SlotCatalog = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

// AvailableSlots returns the catalog slots that still have capacity: a slot
// is bookable while fewer non-cancelled appointments start at it than there
// are active staff. This is capacity-based, not per-staff assignment.
func AvailableSlots(appts []models.Appointment, staffCount int) []string {
	startCounts := make(map[string]int, len(appts))
	for _, a := range appts {
		if a.IsCancelled() {
			continue
		}
		startCounts[a.StartTime]++
	}

	available := make([]string, 0, len(SlotCatalog))
	for _, slot := range SlotCatalog {
		if startCounts[slot] < staffCount {
			available = append(available, slot)
		}
	}
	return available
}

// AvailableProfessionals returns the staff whose ID is not among the
// professionals of non-cancelled appointments starting at exactly startTime.
func AvailableProfessionals(staff []models.User, appts []models.Appointment, startTime string) []models.User {
	busy := make(map[uint]bool, len(appts))
	for _, a := range appts {
		if a.IsCancelled() || a.StartTime != startTime {
			continue
		}
		if a.ProfessionalID != 0 {
			busy[a.ProfessionalID] = true
		}
	}

	available := make([]models.User, 0, len(staff))
	for _, u := range staff {
		if !busy[u.ID] {
			available = append(available, u)
		}
	}
	return available
}
