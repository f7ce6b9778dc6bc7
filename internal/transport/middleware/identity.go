package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/learning-continuity/pkg/ctxutil"
)

// UserIDHeader carries the caller identity set by the fronting gateway.
const UserIDHeader = "X-User-Id"

const maxUserIDLength = 128

// Identity stores the caller's user ID from UserIDHeader in the request
// context. Requests without the header pass through anonymously; handlers
// that need a user reject them. A malformed ID is rejected with 400.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if id == "" {
			next.ServeHTTP(w, r) // Anonymous
			return
		}
		if len(id) > maxUserIDLength || strings.ContainsAny(id, "/ \t") {
			http.Error(w, "invalid "+UserIDHeader, http.StatusBadRequest)
			return
		}
		ctx := ctxutil.WithUserID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
