package booking

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"broheal/models"
)

// defaultSlotDuration is assumed when the source carries no end time.
const defaultSlotDuration = 60 // minutes

// defaultSlotTimes is offered when a therapist has no schedule for the
// requested date.
var defaultSlotTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "14:00", "14:30", "15:00", "15:30", "16:00",
	"16:30", "17:00", "17:30", "18:00",
}

// anyTherapistSlotTimes is the wider grid offered when the user does not pick
// a specific therapist and a match is made later.
var anyTherapistSlotTimes = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

// parseClock converts "HH:MM" into minutes from midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// formatClock converts minutes from midnight into "HH:MM", wrapping past
// midnight.
func formatClock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeSlots converts the legacy slot shapes into canonical Slot records:
// the start time comes from whichever of time/slotTime/startTime is set,
// the end time defaults to start + 60 minutes, availability reflects the
// source's status or flag (a bare time string counts as available), and
// duplicates by time are dropped, first occurrence winning.
func NormalizeSlots(raw []models.RawSlot) []models.Slot {
	out := make([]models.Slot, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, rs := range raw {
		start := rs.Time
		if start == "" {
			start = rs.SlotTime
		}
		if start == "" {
			start = rs.StartTime
		}
		if start == "" {
			continue
		}
		if seen[start] {
			continue
		}

		startMin, ok := parseClock(start)
		if !ok {
			continue
		}

		startTime := rs.StartTime
		if startTime == "" {
			startTime = start
		}
		endTime := rs.EndTime
		if endTime == "" {
			endTime = formatClock(startMin + defaultSlotDuration)
		}

		available := true
		switch {
		case rs.Status != "":
			available = rs.Status == "available"
		case rs.Available != nil:
			available = *rs.Available
		}

		seen[start] = true
		out = append(out, models.Slot{
			Time:      start,
			StartTime: startTime,
			EndTime:   endTime,
			Available: available,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// FilterAvailable keeps only slots offered to users.
func FilterAvailable(slots []models.Slot) []models.Slot {
	out := make([]models.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// slotsFromTimes expands a bare time grid into raw slots.
func slotsFromTimes(times []string) []models.RawSlot {
	raw := make([]models.RawSlot, 0, len(times))
	for _, t := range times {
		raw = append(raw, models.RawSlot{Time: t})
	}
	return raw
}

// applyBooked marks slots whose time already carries a booking as taken.
func applyBooked(slots []models.Slot, booked map[string]bool) []models.Slot {
	for i := range slots {
		if booked[slots[i].Time] {
			slots[i].Available = false
		}
	}
	return slots
}
