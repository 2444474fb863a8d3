package route_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/route"
)

func TestParseHistoryMode(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected route.HistoryMode
		err      error
	}{
		{"hash", route.Hash, nil},
		{" History ", route.History, nil},
		{"", "", mediaspa.ErrNotValid},
		{"memory", "", mediaspa.ErrNotValid},
	} {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := route.ParseHistoryMode(tc.input)
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestHistoryModeHref(t *testing.T) {
	require.Equal(t, "/app/#/video", route.Hash.Href("/app/", "/video"))
	require.Equal(t, "/app/#/", route.Hash.Href("/app", "/"))
	require.Equal(t, "/app/video", route.History.Href("/app/", "/video"))
	require.Equal(t, "/app/", route.History.Href("/app", "/"))
	require.Equal(t, "/audio", route.History.Href("/", "/audio"))
}

func TestHistoryModePathFromURL(t *testing.T) {
	for _, tc := range []struct {
		name     string
		mode     route.HistoryMode
		base     string
		raw      string
		expected string
		ok       bool
	}{
		{"Hash-Fragment", route.Hash, "/app/", "http://localhost:3000/app/#/video", "/video", true},
		{"Hash-No-Fragment", route.Hash, "/app/", "http://localhost:3000/app/", "/", true},
		{"Hash-Outside-Base", route.Hash, "/app/", "http://localhost:3000/other/#/video", "", false},
		{"History-Path", route.History, "/app/", "http://localhost:3000/app/audio", "/audio", true},
		{"History-Base", route.History, "/app/", "http://localhost:3000/app", "/", true},
		{"History-Root-Base", route.History, "/", "http://localhost:3000/video", "/video", true},
		{"History-Lookalike", route.History, "/app/", "http://localhost:3000/apple", "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			u, err := url.Parse(tc.raw)
			require.Nil(t, err)

			actual, ok := tc.mode.PathFromURL(tc.base, u)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.expected, actual)
		})
	}
}
