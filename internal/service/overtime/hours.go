package overtime

import (
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
)

// Night window: 22:00 (inclusive) to 05:00 (exclusive), wall clock.
const (
	nightWindowStartHour = 22
	nightWindowEndHour   = 5
	nightSegment         = 30 * time.Minute
)

// Flags are the requested differential flags of an overtime interval.
// Extra100 wins the hour bucket; Extra50 is the default. Night marks the
// request for the night differential but the night-hour count itself is
// always derived from the wall clock.
type Flags struct {
	Extra50  bool
	Extra100 bool
	Night    bool
}

// ComputeHours derives the net hours breakdown of one overtime interval.
// It is pure: same input, same output, no side effects, so it is safe to
// call repeatedly for live form previews.
//
// Total is (end-start) minus the break, clamped at zero. The full total
// lands in exactly one of the 50%/100% buckets. Night hours are counted
// independently by walking the interval in 30-minute segments and
// accumulating every segment whose starting wall-clock hour falls inside
// the 22:00-05:00 window, clipped at the interval end; they overlap the
// 50/100 buckets rather than being subtracted from them.
func ComputeHours(start, end time.Time, breakMinutes int, flags Flags) overtime.HoursBreakdown {
	var h overtime.HoursBreakdown
	if !end.After(start) {
		return h
	}

	total := end.Sub(start).Hours() - float64(breakMinutes)/60
	if total < 0 {
		total = 0
	}
	h.Total = total

	if flags.Extra100 {
		h.H100 = total
	} else {
		h.H50 = total
	}

	for cursor := start; cursor.Before(end); cursor = cursor.Add(nightSegment) {
		if !isNightHour(cursor.Hour()) {
			continue
		}
		segmentEnd := cursor.Add(nightSegment)
		if segmentEnd.After(end) {
			segmentEnd = end
		}
		h.HNight += segmentEnd.Sub(cursor).Hours()
	}

	return h
}

func isNightHour(hour int) bool {
	return hour >= nightWindowStartHour || hour < nightWindowEndHour
}
