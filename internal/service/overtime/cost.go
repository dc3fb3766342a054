package overtime

import (
	"math"

	"github.com/casarosa-rh/hr-backend-go/internal/config"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
)

// EstimateCost prices a computed hours breakdown against a monthly
// salary. The base hourly rate is salary divided by the contracted
// monthly hours; each bucket is multiplied by its configured surcharge
// and the night differential is applied on top of the night hours.
//
// Returns 0 when the employee has no salary on file. Rounding to two
// decimal places happens once, on the final sum.
func EstimateCost(h overtime.HoursBreakdown, monthlySalary float64, cfg config.OvertimeConfig) float64 {
	if monthlySalary <= 0 || cfg.MonthlyHours <= 0 {
		return 0
	}

	base := monthlySalary / cfg.MonthlyHours
	cost := h.HNight*base*cfg.NightRate +
		h.H50*base*cfg.Rate50 +
		h.H100*base*cfg.Rate100

	return math.Round(cost*100) / 100
}
