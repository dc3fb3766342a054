package attendance

import "time"

// Record is one employee/day attendance row. ClockOut stays nil until the
// employee clocks out; a day can hold at most one open record.
type Record struct {
	ID          string
	EmployeeUID string
	Date        time.Time
	ClockIn     time.Time
	ClockOut    *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkedHours is the net clocked span; zero while the record is open.
func (r Record) WorkedHours() float64 {
	if r.ClockOut == nil {
		return 0
	}
	return r.ClockOut.Sub(r.ClockIn).Hours()
}

// MonthlyTotal aggregates one employee's presence for a YYYY-MM month.
type MonthlyTotal struct {
	Month       string  `json:"month"`
	DaysPresent int     `json:"days_present"`
	TotalHours  float64 `json:"total_hours"`
}
