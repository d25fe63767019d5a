package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, operator.ErrAdminAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || operator.Role(role) != operator.RoleAdmin {
			response.HandleError(w, operator.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// PlannerOnly requires the planner or admin role
func PlannerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, operator.ErrPlannerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, operator.ErrPlannerAccessRequired)
			return
		}

		role := operator.Role(roleStr)
		if role != operator.RolePlanner && role != operator.RoleAdmin {
			response.HandleError(w, operator.ErrPlannerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
