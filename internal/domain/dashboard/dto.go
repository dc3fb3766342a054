package dashboard

import "time"

// Summary is the landing-page tile set. Tiles are loaded concurrently;
// MonthOvertimeCost is omitted for COLABORADOR actors.
type Summary struct {
	Headcount         int                `json:"headcount"`
	PendingOvertime   int                `json:"pending_overtime"`
	PendingVacations  int                `json:"pending_vacations"`
	MonthOvertimeHrs  float64            `json:"month_overtime_hours"`
	MonthOvertimeCost *float64           `json:"month_overtime_cost,omitempty"`
	UpcomingVacations []UpcomingVacation `json:"upcoming_vacations"`
}

type UpcomingVacation struct {
	EmployeeUID  string    `json:"employee_uid"`
	EmployeeName string    `json:"employee_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Days         int       `json:"days"`
}
