package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"coffeeshop-pos/internal/domain"
	"coffeeshop-pos/internal/service"
)

type contextKey string

const staffContextKey contextKey = "staff"

// StaffResolver resolves the X-Staff-ID header to a profile and stashes it
// in the request context. Session handling itself belongs to the auth
// provider; a missing or unknown header just means an unauthenticated
// customer, which is fine for placing orders and reading the menu.
func StaffResolver(staff service.StaffServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get("X-Staff-ID"); raw != "" {
				if id, err := strconv.Atoi(raw); err == nil && id > 0 {
					if profile, err := staff.Get(id); err == nil {
						r = r.WithContext(context.WithValue(r.Context(), staffContextKey, profile))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func staffFrom(r *http.Request) *domain.Profile {
	profile, _ := r.Context().Value(staffContextKey).(*domain.Profile)
	return profile
}
