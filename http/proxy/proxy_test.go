package proxy_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/proxy"
	"github.com/xy-planning-network/mediaspa/logger"
)

type seen struct {
	host      string
	path      string
	query     string
	forwarded string
}

func upstream(t *testing.T) (*url.URL, *seen) {
	t.Helper()

	s := new(seen)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.host = r.Host
		s.path = r.URL.Path
		s.query = r.URL.RawQuery
		s.forwarded = r.Header.Get("X-Forwarded-Host")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("upstream"))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.Nil(t, err)

	return u, s
}

func quietLogger() logger.Logger {
	return logger.NewLogger(logger.WithLogger(log.New(io.Discard, "", 0)))
}

func TestNew(t *testing.T) {
	tcs := []struct {
		name     string
		cfg      proxy.Config
		err      error
		expected string
	}{
		{"No-Target", proxy.Config{}, proxy.ErrNoTarget, ""},
		{"No-Host", proxy.Config{Target: &url.URL{Path: "/x"}}, proxy.ErrNoTarget, ""},
		{"Root-Prefix", proxy.Config{Prefix: "/", Target: &url.URL{Scheme: "http", Host: "example.com"}}, proxy.ErrPrefix, ""},
		{"Default-Prefix", proxy.Config{Target: &url.URL{Scheme: "http", Host: "example.com"}}, nil, "/api"},
		{"Trimmed-Prefix", proxy.Config{Prefix: "backend/", Target: &url.URL{Scheme: "http", Host: "example.com"}}, nil, "/backend"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			p, err := proxy.New(tc.cfg, quietLogger())

			// Assert
			require.ErrorIs(t, err, tc.err)
			if tc.err != nil {
				require.ErrorIs(t, err, mediaspa.ErrBadConfig)
				require.Nil(t, p)
				return
			}
			require.Equal(t, tc.expected, p.Prefix())
		})
	}
}

func TestStripPrefix(t *testing.T) {
	// Arrange
	p, err := proxy.New(proxy.Config{Target: &url.URL{Scheme: "http", Host: "113.45.79.44"}}, quietLogger())
	require.Nil(t, err)

	tcs := []struct {
		path     string
		expected string
	}{
		{"/api/videos", "/videos"},
		{"/api/videos/1/", "/videos/1/"},
		{"/api", "/"},
		{"/api/", "/"},
		{"/apiary", "/apiary"},
		{"/video", "/video"},
	}

	for _, tc := range tcs {
		t.Run(tc.path, func(t *testing.T) {
			require.Equal(t, tc.expected, p.StripPrefix(tc.path))
		})
	}
}

func TestProxyServeHTTP(t *testing.T) {
	t.Run("Change-Origin", func(t *testing.T) {
		// Arrange
		target, s := upstream(t)
		p, err := proxy.New(proxy.Config{Target: target, ChangeOrigin: true}, quietLogger())
		require.Nil(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://localhost:5173/api/videos?page=2", nil)

		// Act
		p.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusTeapot, w.Code)
		require.Equal(t, "upstream", w.Body.String())
		require.Equal(t, "/videos", s.path)
		require.Equal(t, "page=2", s.query)
		require.Equal(t, target.Host, s.host)
		require.Equal(t, "localhost:5173", s.forwarded)
	})

	t.Run("Keep-Origin", func(t *testing.T) {
		// Arrange
		target, s := upstream(t)
		p, err := proxy.New(proxy.Config{Target: target}, quietLogger())
		require.Nil(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "http://localhost:5173/api", nil)

		// Act
		p.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusTeapot, w.Code)
		require.Equal(t, "/", s.path)
		require.Equal(t, "localhost:5173", s.host)
	})

	t.Run("Upstream-Down", func(t *testing.T) {
		// Arrange
		srv := httptest.NewServer(http.NotFoundHandler())
		target, _ := url.Parse(srv.URL)
		srv.Close()

		p, err := proxy.New(proxy.Config{Target: target, ChangeOrigin: true}, quietLogger())
		require.Nil(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://localhost:5173/api/videos", nil)

		// Act
		p.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusBadGateway, w.Code)
	})
}
