package services

import (
	"strings"
	"time"

	"jobberBack/internal/models"
)

const availabilityLookaheadDays = 30

// expandAvailability turns a weekly schedule into a date -> slots map over
// the lookahead window starting at from. Days the seeker does not work are
// omitted.
func expandAvailability(schedule models.WeeklySchedule, from time.Time, days int) map[string][]string {
	out := make(map[string][]string)
	if len(schedule) == 0 {
		return out
	}

	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		weekday := strings.ToLower(day.Weekday().String())
		slots, ok := schedule[weekday]
		if !ok || len(slots) == 0 {
			continue
		}
		out[day.Format("2006-01-02")] = append([]string(nil), slots...)
	}
	return out
}
