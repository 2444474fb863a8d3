package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/middleware"
)

func TestRequestID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	var id string

	// Act
	middleware.RequestID()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		val, ok := rx.Context().Value(mediaspa.RequestIDKey).(string)
		require.True(t, ok)
		id = val
	})).ServeHTTP(w, r)

	// Assert
	require.NotZero(t, id)
	require.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
}
