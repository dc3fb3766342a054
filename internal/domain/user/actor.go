package user

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

// Actor identifies who is performing an operation. It is resolved once
// from the JWT claims at the handler boundary and passed explicitly into
// services, so permission checks never read ambient state.
type Actor struct {
	UserID      string
	EmployeeUID string
	Email       string
	Role        Role
}

// IsSelf reports whether the actor is the employee identified by uid or
// email. Older records may carry only the email reference.
func (a Actor) IsSelf(uid, email string) bool {
	if a.EmployeeUID != "" && a.EmployeeUID == uid {
		return true
	}
	return a.Email != "" && a.Email == email
}

// ActorFromContext builds an Actor from the verified JWT claims.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, ErrInvalidClaims
	}

	actor := Actor{}
	if v, ok := claims["user_id"].(string); ok {
		actor.UserID = v
	}
	if v, ok := claims["employee_uid"].(string); ok {
		actor.EmployeeUID = v
	}
	if v, ok := claims["email"].(string); ok {
		actor.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = Role(v)
	}

	if actor.UserID == "" || !actor.Role.Valid() {
		return Actor{}, ErrInvalidClaims
	}

	return actor, nil
}
