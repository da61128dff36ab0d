package middleware

import (
	"net/http"

	"golang.org/x/sync/semaphore"
)

// ConcurrencyLimit bounds the number of requests handled at once, the Go
// rendition of the original deployment's fixed worker pool. Each request
// runs to completion on its goroutine; excess requests wait for a slot or
// give up when the client goes away.
func ConcurrencyLimit(max int64) func(http.Handler) http.Handler {
	sem := semaphore.NewWeighted(max)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sem.Acquire(r.Context(), 1); err != nil {
				// Client cancelled while queued.
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			defer sem.Release(1)

			next.ServeHTTP(w, r)
		})
	}
}
