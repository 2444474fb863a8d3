package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/middleware"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		method   string
		target   string
		ip       string
		status   int
		expected map[string]any
	}{
		{
			"Zero-Value",
			http.MethodGet,
			"/",
			"",
			http.StatusOK,
			map[string]any{"method": "GET", "path": "/", "uri": "/", "status": float64(200)},
		},
		{
			"With-IP",
			http.MethodGet,
			"/app/video",
			"1.1.1.1",
			http.StatusOK,
			map[string]any{"path": "/app/video", "ipAddr": "1.1.1.1"},
		},
		{
			"Masked-Token",
			http.MethodGet,
			"/app/audio?token=secret&page=2",
			"",
			http.StatusOK,
			map[string]any{"uri": "/app/audio?page=2&token=" + mediaspa.LogMaskVal},
		},
		{
			"Not-Found",
			http.MethodPost,
			"/app/missing",
			"",
			http.StatusNotFound,
			map[string]any{"method": "POST", "status": float64(404)},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			buf := new(bytes.Buffer)
			l := slog.New(slog.NewJSONHandler(buf, nil))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, "http://example.com"+tc.target, nil)
			r.Header.Set("User-Agent", "mediaspa/test")
			ctx := context.WithValue(r.Context(), mediaspa.RequestIDKey, "test-id")
			if tc.ip != "" {
				ctx = context.WithValue(ctx, mediaspa.IpAddrKey, tc.ip)
			}
			r = r.WithContext(ctx)

			h := http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(tc.status)
				wx.Write([]byte("test"))
			})

			// Act
			middleware.LogRequest(l)(h).ServeHTTP(w, r)

			// Assert
			var line struct {
				Kind    string         `json:"kind"`
				Request map[string]any `json:"request"`
			}
			require.Nil(t, json.Unmarshal(buf.Bytes(), &line))
			require.Equal(t, "http", line.Kind)
			require.Equal(t, "test-id", line.Request["id"])
			require.Equal(t, "example.com", line.Request["host"])
			require.Equal(t, "mediaspa/test", line.Request["userAgent"])
			require.Equal(t, float64(len("test")), line.Request["bodySize"])
			for k, v := range tc.expected {
				require.Equal(t, v, line.Request[k], k)
			}
		})
	}
}
