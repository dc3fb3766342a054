package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 1, PeriodDays(day("2025-07-07"), day("2025-07-07")))
	assert.Equal(t, 10, PeriodDays(day("2025-07-07"), day("2025-07-16")))
	assert.Equal(t, 0, PeriodDays(day("2025-07-16"), day("2025-07-07")))
}

func TestOverlapsPeriod(t *testing.T) {
	existing := Vacation{
		StartDate: day("2025-07-10"),
		EndDate:   day("2025-07-20"),
		Status:    StatusAprovada,
	}

	assert.True(t, existing.OverlapsPeriod(day("2025-07-05"), day("2025-07-10")))
	assert.True(t, existing.OverlapsPeriod(day("2025-07-15"), day("2025-07-25")))
	assert.True(t, existing.OverlapsPeriod(day("2025-07-12"), day("2025-07-13")))
	assert.False(t, existing.OverlapsPeriod(day("2025-07-01"), day("2025-07-09")))
	assert.False(t, existing.OverlapsPeriod(day("2025-07-21"), day("2025-07-30")))

	existing.Status = StatusRejeitada
	assert.False(t, existing.OverlapsPeriod(day("2025-07-12"), day("2025-07-13")))

	existing.Status = StatusCancelada
	assert.False(t, existing.OverlapsPeriod(day("2025-07-12"), day("2025-07-13")))
}
