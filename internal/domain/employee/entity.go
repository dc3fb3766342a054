package employee

import (
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// Employee is the master record the rest of the system references by UID.
// MonthlySalary feeds the overtime cost estimation; ManagerUID drives the
// approval scoping.
type Employee struct {
	ID            string
	UID           string
	Name          string
	Email         string
	ManagerUID    *string
	CostCenter    string
	Role          user.Role
	MonthlySalary float64
	AdmissionDate time.Time
	Active        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HourlyRate derives the base hourly wage from the contracted monthly
// hours. Returns 0 when no salary is on file.
func (e Employee) HourlyRate(monthlyHours float64) float64 {
	if e.MonthlySalary <= 0 || monthlyHours <= 0 {
		return 0
	}
	return e.MonthlySalary / monthlyHours
}
