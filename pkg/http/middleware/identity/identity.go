package identity

import (
	"net/http"
	"strconv"

	"github.com/feastline/storefront/internal/service/models/auth"
)

// Headers set by the upstream access gate after it has authenticated the
// caller. The service trusts them; it never authenticates on its own.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

// NewIdentityMiddleware resolves the caller's principal from the access gate
// headers and stores it in the request context. Requests without a resolvable
// identity are rejected before reaching any handler.
func NewIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			http.Error(w, "authentication required", http.StatusUnauthorized)

			return
		}

		role, err := auth.ParseRole(r.Header.Get(HeaderUserRole))
		if err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)

			return
		}

		principal := auth.Principal{
			UserID: userID,
			Name:   r.Header.Get(HeaderUserName),
			Email:  r.Header.Get(HeaderUserEmail),
			Role:   role,
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}
