package middleware

import (
	"fmt"
	"net/http"
	"time"
)

// CacheControl adds a "Cache-Control" header allowing clients to cache the response for maxAge.
//
// A non-positive maxAge forbids caching.
func CacheControl(maxAge time.Duration) Adapter {
	val := "no-cache"
	if maxAge > 0 {
		val = fmt.Sprintf("max-age=%d", int(maxAge.Seconds()))
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", val)
			h.ServeHTTP(w, r)
		})
	}
}
