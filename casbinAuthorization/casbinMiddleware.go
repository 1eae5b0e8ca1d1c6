package casbinAuthorization

import (
	"log"
	"net/http"

	"github.com/Rezuan-Alam-Rean/building-management-server/handlers"
	"github.com/casbin/casbin"
)

// CasbinMiddleware enforces the role policy using the role claim placed on
// the context by the session middleware. Requests without a role claim are
// evaluated as Unauthenticated.
func CasbinMiddleware(enforcer *casbin.Enforcer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(writer http.ResponseWriter, req *http.Request) {
			role := "Unauthenticated"
			if claims, ok := req.Context().Value(handlers.ClaimsContextKey{}).(map[string]interface{}); ok {
				if value, ok := claims["role"].(string); ok && value != "" {
					role = value
				}
			}

			res, err := enforcer.EnforceSafe(role, req.URL.Path, req.Method)
			if err != nil {
				log.Println("Enforce error:", err)
				http.Error(writer, "Unauthorized user", http.StatusUnauthorized)
				return
			}

			if res {
				next.ServeHTTP(writer, req)
			} else {
				http.Error(writer, "Forbidden", http.StatusForbidden)
			}
		}

		return http.HandlerFunc(fn)
	}
}
