package overtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casarosa-rh/hr-backend-go/internal/config"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
)

func testOvertimeConfig() config.OvertimeConfig {
	return config.OvertimeConfig{
		MonthlyHours:    220,
		Rate50:          1.5,
		Rate100:         2.0,
		NightRate:       0.2,
		DailyLimitHours: 2,
	}
}

func TestEstimateCost_Fifty(t *testing.T) {
	// salary 2200 / 220h -> base rate 10; 2h at 50% -> 2 * 10 * 1.5.
	cost := EstimateCost(overtime.HoursBreakdown{Total: 2, H50: 2}, 2200, testOvertimeConfig())

	assert.Equal(t, 30.0, cost)
}

func TestEstimateCost_Hundred(t *testing.T) {
	cost := EstimateCost(overtime.HoursBreakdown{Total: 3, H100: 3}, 2200, testOvertimeConfig())

	assert.Equal(t, 60.0, cost)
}

func TestEstimateCost_NightDifferentialOnTop(t *testing.T) {
	// 2h at 50% plus 1.5 night hours: 2*10*1.5 + 1.5*10*0.2.
	cost := EstimateCost(overtime.HoursBreakdown{Total: 2, H50: 2, HNight: 1.5}, 2200, testOvertimeConfig())

	assert.Equal(t, 33.0, cost)
}

func TestEstimateCost_NoSalaryOnFile(t *testing.T) {
	cost := EstimateCost(overtime.HoursBreakdown{Total: 8, H50: 8}, 0, testOvertimeConfig())

	assert.Equal(t, 0.0, cost)
}

func TestEstimateCost_RoundsFinalResultOnly(t *testing.T) {
	// base rate 2543.21/220 = 11.5600454...; the per-term products have
	// long fractions but the sum rounds once at the end.
	cfg := testOvertimeConfig()
	cost := EstimateCost(overtime.HoursBreakdown{Total: 1.75, H50: 1.75, HNight: 0.5}, 2543.21, cfg)

	base := 2543.21 / 220
	want := 1.75*base*1.5 + 0.5*base*0.2
	assert.InDelta(t, want, cost, 0.005)
	assert.Equal(t, cost, float64(int(cost*100+0.5))/100)
}
