package overtime

import (
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// Capability is one guarded operation of the overtime workflow.
type Capability string

const (
	CapCreate      Capability = "overtime.create"
	CapDecide      Capability = "overtime.decide"
	CapExecute     Capability = "overtime.execute"
	CapAcknowledge Capability = "overtime.acknowledge"
	CapPayroll     Capability = "overtime.payroll"
)

// Gate decides whether an actor may exercise a capability against a
// request. It is injected into the workflow service at construction so
// permission rules never come from ambient state. req is nil for
// capabilities that are not bound to an existing record (creation).
type Gate func(actor user.Actor, cap Capability, req *Request) error

// DefaultGate implements the stock permission table:
//
//	create / arbitrary edits  ADM, RH
//	approve / reject / adjust ADM or the referenced manager
//	execute                   ADM, RH or the referenced manager
//	payroll export            ADM, RH
//	acknowledge               the owning employee
func DefaultGate(actor user.Actor, cap Capability, req *Request) error {
	switch cap {
	case CapCreate:
		if actor.Role.IsHR() {
			return nil
		}
	case CapDecide:
		if actor.Role == user.RoleADM {
			return nil
		}
		if req != nil && actor.EmployeeUID != "" && actor.EmployeeUID == req.ManagerUID {
			return nil
		}
	case CapExecute:
		if actor.Role.IsHR() {
			return nil
		}
		if req != nil && actor.EmployeeUID != "" && actor.EmployeeUID == req.ManagerUID {
			return nil
		}
	case CapPayroll:
		if actor.Role.IsHR() {
			return nil
		}
	case CapAcknowledge:
		if req != nil && actor.IsSelf(req.EmployeeUID, req.EmployeeEmail) {
			return nil
		}
	}
	return user.ErrNotAllowed
}
