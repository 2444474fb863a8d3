package web_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa/route"
	"github.com/xy-planning-network/mediaspa/web"
)

func TestDefaultRoutes(t *testing.T) {
	// Arrange
	cfg, err := route.Load(web.FS, web.RoutesFile)
	require.Nil(t, err)

	// Act
	table, err := cfg.Table()

	// Assert
	require.Nil(t, err)
	require.Equal(t, route.Hash, cfg.History)
	require.True(t, table.Strict())

	tcs := []struct {
		path   string
		kind   route.Kind
		target string
		name   string
		view   route.View
		title  string
	}{
		{"/", route.Redirected, "/video", "video", "views/video/index", "视频"},
		{"/video", route.Matched, "", "video", "views/video/index", "视频"},
		{"/audio", route.Matched, "", "music", "views/audio/index", "音频"},
		{"/video/", route.NotFound, "", "", "", ""},
		{"/podcasts", route.NotFound, "", "", "", ""},
	}

	for _, tc := range tcs {
		t.Run(tc.path, func(t *testing.T) {
			// Act
			res := table.Resolve(tc.path)

			// Assert
			require.Equal(t, tc.kind, res.Kind)
			require.Equal(t, tc.target, res.Target)
			require.Equal(t, tc.name, res.Match.Name)
			require.Equal(t, tc.view, res.Match.View)
			require.Equal(t, tc.title, res.Title())
			if res.Found() {
				require.Equal(t, []route.View{"components/layout/index"}, res.Match.Layouts)
			}
		})
	}
}

func TestDist(t *testing.T) {
	// Act
	info, err := fs.Stat(web.Dist(), "assets")

	// Assert
	require.Nil(t, err)
	require.True(t, info.IsDir())
}
