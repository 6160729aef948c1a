// Package schedule implements the scheduling validator: pure
// functions deciding whether a proposed (court, date, time, duration)
// booking collides with an existing one.  Intervals are half-open, so
// a booking ending at 10:30 and another starting at 10:30 do not
// conflict.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danielfranchi555/padelAdministration/internal/model"
)

// TimeToMinutes converts an "HH:MM" clock string into minutes from
// midnight.  It returns an error for anything that does not parse as
// a valid 24h clock value.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	return h*60 + m, nil
}

// AddMinutes shifts an "HH:MM" clock string forward by the given
// number of minutes and formats the result the same way.
func AddMinutes(t string, minutes int) (string, error) {
	start, err := TimeToMinutes(t)
	if err != nil {
		return "", err
	}
	total := start + minutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// overlaps reports whether the half-open intervals [s1,e1) and
// [s2,e2) intersect.
func overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// HasOverlap reports whether the proposed booking collides with any
// existing match on the same court and date.  Completed matches are
// out of the running schedule and never block a slot.  excludeID lets
// an edit-in-place check ignore the match being edited; pass the
// empty string when creating.  Matches whose stored time fails to
// parse are skipped rather than treated as conflicts.
func HasOverlap(matches []model.Match, courtID int, date, startTime string, duration int, excludeID string) (bool, error) {
	start, err := TimeToMinutes(startTime)
	if err != nil {
		return false, err
	}
	end := start + duration
	for _, m := range matches {
		if m.ID == excludeID || m.IsCompleted {
			continue
		}
		if m.CourtID != courtID || m.Date != date {
			continue
		}
		s, err := TimeToMinutes(m.StartTime)
		if err != nil {
			continue
		}
		if overlaps(start, end, s, s+m.Duration) {
			return true, nil
		}
	}
	return false, nil
}

// Slot is one proposed start time for a booking, with a flag telling
// the caller whether the slot is already taken.
type Slot struct {
	Time    string `json:"time"`
	EndTime string `json:"end_time"`
	Blocked bool   `json:"blocked"`
}

// slotStepMinutes is the spacing of the proposed start grid.  Matches
// run 90 minutes, so the grid advances in 90-minute steps from 09:00
// with the last slot starting at 22:30.
const (
	slotStepMinutes  = 90
	firstSlotMinutes = 9 * 60
	lastSlotMinutes  = 22*60 + 30
)

// AvailableSlots builds the start-time grid for a court and date,
// marking each slot blocked when the overlap validator rejects it.
func AvailableSlots(matches []model.Match, courtID int, date string, duration int) []Slot {
	var slots []Slot
	for t := firstSlotMinutes; t <= lastSlotMinutes; t += slotStepMinutes {
		start := fmt.Sprintf("%02d:%02d", t/60, t%60)
		end := t + duration
		blocked, err := HasOverlap(matches, courtID, date, start, duration, "")
		if err != nil {
			continue
		}
		slots = append(slots, Slot{
			Time:    start,
			EndTime: fmt.Sprintf("%02d:%02d", end/60, end%60),
			Blocked: blocked,
		})
	}
	return slots
}
