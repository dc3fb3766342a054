package overtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return parsed
}

func TestComputeHours_EveningInterval(t *testing.T) {
	// 18:00-20:00, no break, 50% requested: everything lands in h50,
	// nothing touches the night window.
	h := ComputeHours(ts(t, "2025-03-10T18:00:00-03:00"), ts(t, "2025-03-10T20:00:00-03:00"), 0, Flags{Extra50: true})

	assert.Equal(t, 2.0, h.Total)
	assert.Equal(t, 2.0, h.H50)
	assert.Equal(t, 0.0, h.H100)
	assert.Equal(t, 0.0, h.HNight)
}

func TestComputeHours_Extra100TakesPrecedence(t *testing.T) {
	h := ComputeHours(ts(t, "2025-03-10T18:00:00-03:00"), ts(t, "2025-03-10T21:00:00-03:00"), 0, Flags{Extra50: true, Extra100: true})

	assert.Equal(t, 3.0, h.Total)
	assert.Equal(t, 0.0, h.H50)
	assert.Equal(t, 3.0, h.H100)
}

func TestComputeHours_BreakSubtracted(t *testing.T) {
	h := ComputeHours(ts(t, "2025-03-10T18:00:00-03:00"), ts(t, "2025-03-10T21:00:00-03:00"), 30, Flags{})

	assert.Equal(t, 2.5, h.Total)
	assert.Equal(t, 2.5, h.H50) // 50% is the default bucket
}

func TestComputeHours_BreakLongerThanIntervalClampsToZero(t *testing.T) {
	h := ComputeHours(ts(t, "2025-03-10T18:00:00-03:00"), ts(t, "2025-03-10T19:00:00-03:00"), 120, Flags{})

	assert.Equal(t, 0.0, h.Total)
	assert.Equal(t, 0.0, h.H50)
	assert.Equal(t, 0.0, h.H100)
}

func TestComputeHours_BucketsPartitionTotal(t *testing.T) {
	// h50 + h100 == total for any single record.
	for _, flags := range []Flags{{}, {Extra50: true}, {Extra100: true}} {
		h := ComputeHours(ts(t, "2025-03-10T17:15:00-03:00"), ts(t, "2025-03-10T20:45:00-03:00"), 15, flags)
		assert.InDelta(t, h.Total, h.H50+h.H100, 1e-9)
	}
}

func TestComputeHours_NightStraddlesWindowStart(t *testing.T) {
	// 21:30-23:30: the 21:30-22:00 segment is outside the window,
	// 22:00-23:30 is inside.
	h := ComputeHours(ts(t, "2025-03-10T21:30:00-03:00"), ts(t, "2025-03-10T23:30:00-03:00"), 0, Flags{Extra50: true, Night: true})

	assert.Equal(t, 2.0, h.Total)
	assert.Equal(t, 2.0, h.H50)
	assert.InDelta(t, 1.5, h.HNight, 1e-9)
}

func TestComputeHours_EntirelyInsideNightWindow(t *testing.T) {
	// Crosses midnight, fully within 22:00-05:00.
	h := ComputeHours(ts(t, "2025-03-10T23:00:00-03:00"), ts(t, "2025-03-11T02:00:00-03:00"), 0, Flags{Night: true})

	assert.Equal(t, 3.0, h.Total)
	assert.InDelta(t, h.Total, h.HNight, 1e-9)
}

func TestComputeHours_EntirelyOutsideNightWindow(t *testing.T) {
	h := ComputeHours(ts(t, "2025-03-10T08:00:00-03:00"), ts(t, "2025-03-10T17:00:00-03:00"), 60, Flags{})

	assert.Equal(t, 0.0, h.HNight)
}

func TestComputeHours_NightClippedAtIntervalEnd(t *testing.T) {
	// 22:00-22:45: two segments, the second clipped to 15 minutes.
	h := ComputeHours(ts(t, "2025-03-10T22:00:00-03:00"), ts(t, "2025-03-10T22:45:00-03:00"), 0, Flags{Night: true})

	assert.InDelta(t, 0.75, h.HNight, 1e-9)
}

func TestComputeHours_WindowEndsAtFive(t *testing.T) {
	// 04:30-05:30: only the 04:30-05:00 segment counts.
	h := ComputeHours(ts(t, "2025-03-10T04:30:00-03:00"), ts(t, "2025-03-10T05:30:00-03:00"), 0, Flags{Night: true})

	assert.InDelta(t, 0.5, h.HNight, 1e-9)
}

func TestComputeHours_InvalidIntervalReturnsZero(t *testing.T) {
	h := ComputeHours(ts(t, "2025-03-10T20:00:00-03:00"), ts(t, "2025-03-10T18:00:00-03:00"), 0, Flags{})

	assert.Equal(t, overtime.HoursBreakdown{}, h)
}

func TestComputeHours_Idempotent(t *testing.T) {
	start, end := ts(t, "2025-03-10T21:30:00-03:00"), ts(t, "2025-03-11T01:00:00-03:00")
	first := ComputeHours(start, end, 15, Flags{Extra100: true, Night: true})
	second := ComputeHours(start, end, 15, Flags{Extra100: true, Night: true})

	assert.Equal(t, first, second)
}
