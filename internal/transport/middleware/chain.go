package middleware

import (
	"net/http"
	"slices"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines mws into a single Middleware; the first one runs outermost.
// Nil entries are skipped so optional middleware can be left unset.
//
// Order matters for this API: Identity must precede the rate limiter so
// buckets are keyed by user, and RequestID must precede Logger.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			if mw != nil {
				final = mw(final)
			}
		}
		return final
	}
}
