package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name       string
		hm         http.Header
		remoteAddr string
		expected   string
	}{
		{"No-Match", make(http.Header), "", "0.0.0.0"},
		{"Remote-Addr", make(http.Header), "203.0.113.9:4312", "203.0.113.9"},
		{
			"Only-Private-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "192.168.0.0")
				return h
			}(),
			"",
			"0.0.0.0",
		},
		{
			"Only-Public-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "1.1.1.1")
				return h
			}(),
			"10.0.0.2:80",
			"1.1.1.1",
		},
		{
			"Get-Before-Proxy",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.0.0.1,1.1.1.1")
				return h
			}(),
			"",
			"1.1.1.1",
		},
		{
			"Get-First-Public",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.255.255.255,8.8.8.8, 1.1.1.1,172.16.0.0")
				return h
			}(),
			"",
			"1.1.1.1",
		},
		{
			"Skip-Shared-Address-Space",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "8.8.8.8,100.64.0.1")
				return h
			}(),
			"",
			"8.8.8.8",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header = tc.hm
			r.RemoteAddr = tc.remoteAddr

			// Act + Assert
			require.Equal(t, tc.expected, middleware.GetIPAddress(r))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "1.1.1.1")

	var actual string
	h := http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		actual = mediaspa.IPAddrFromContext(rx.Context())
	})

	// Act
	middleware.InjectIPAddress()(h).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "1.1.1.1", actual)
}
