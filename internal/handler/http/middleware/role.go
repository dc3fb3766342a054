package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/response"
)

// RequireRoles allows the request through only when the token's role is
// one of the listed profiles. Fine-grained record scoping still happens
// in the service layer; this is the coarse route gate.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := map[user.Role]bool{}
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrNotAllowed)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok || !allowed[user.Role(roleStr)] {
				response.HandleError(w, user.ErrNotAllowed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireHR shorthand for the two company-wide administration profiles.
func RequireHR(next http.Handler) http.Handler {
	return RequireRoles(user.RoleADM, user.RoleRH)(next)
}
