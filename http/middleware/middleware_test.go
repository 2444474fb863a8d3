package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa/http/middleware"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestChain(t *testing.T) {
	// Arrange
	var order []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	middleware.Chain(noopHandler(), mark("first"), mark("second"), mark("third")).ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestCacheControl(t *testing.T) {
	tcs := []struct {
		name     string
		maxAge   time.Duration
		expected string
	}{
		{"Zero", 0, "no-cache"},
		{"Negative", -time.Second, "no-cache"},
		{"Month", 30 * 24 * time.Hour, "max-age=2592000"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/app/assets/main.js", nil)

			// Act
			middleware.CacheControl(tc.maxAge)(noopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Header().Get("Cache-Control"))
		})
	}
}

func TestCompress(t *testing.T) {
	// Arrange
	body := strings.Repeat("media ", 512)
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(body))
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip")

	// Act
	middleware.Compress()(h).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	require.Less(t, w.Body.Len(), len(body))
}
