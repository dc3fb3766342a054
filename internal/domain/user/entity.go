package user

import "time"

// Role is the access profile attached to every authenticated actor.
// The four profiles mirror the HR org chart: ADM and RH administer
// the whole company, GESTOR decides for their direct reports,
// COLABORADOR only sees their own records.
type Role string

const (
	RoleADM         Role = "ADM"
	RoleRH          Role = "RH"
	RoleGestor      Role = "GESTOR"
	RoleColaborador Role = "COLABORADOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleADM, RoleRH, RoleGestor, RoleColaborador:
		return true
	}
	return false
}

// IsHR reports whether the role carries company-wide HR administration.
func (r Role) IsHR() bool {
	return r == RoleADM || r == RoleRH
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	EmployeeUID  string
	Role         Role
	Active       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
