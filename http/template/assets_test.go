package template_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/template"
	tt "github.com/xy-planning-network/mediaspa/http/template/templatetest"
)

const origin = "https://cdn.example.com"

func TestAssetURI(t *testing.T) {
	originURL, _ := url.Parse(origin)
	dist := tt.NewMockFS(
		tt.NewMockFile("assets/index-af8s7f9.js", nil),
		tt.NewMockFile("assets/index-3bd1c0e.css", nil),
		tt.NewMockFile("favicon.ico", nil),
	)

	// Arrange
	tcs := []struct {
		name     string
		filepath string
		fn       func(string) string
		expected string
	}{
		{"env-testing", "assets/index.js", template.AssetURI(nil, mediaspa.Testing, "/app/", dist), ""},
		{
			"development-default-origin",
			"assets/index.js",
			template.AssetURI(nil, mediaspa.Development, "/app/", dist),
			template.DevServerOrigin + "/app/assets/index.js",
		},
		{
			"development-origin",
			"/src/main.js",
			template.AssetURI(originURL, mediaspa.Development, "/app", nil),
			origin + "/app/src/main.js",
		},
		{
			"no-filesystem",
			"assets/index.js",
			template.AssetURI(nil, mediaspa.Production, "/app/", nil),
			"/app/assets/index.js",
		},
		{
			"no-hash-match",
			"assets/vendor.js",
			template.AssetURI(nil, mediaspa.Production, "/app/", dist),
			"/app/assets/vendor.js",
		},
		{
			"hash-match-js",
			"assets/index.js",
			template.AssetURI(nil, mediaspa.Production, "/app/", dist),
			"/app/assets/index-af8s7f9.js",
		},
		{
			"hash-match-css",
			"assets/index.css",
			template.AssetURI(nil, mediaspa.Staging, "/app/", dist),
			"/app/assets/index-3bd1c0e.css",
		},
		{
			"hash-match-origin",
			"assets/index.js",
			template.AssetURI(originURL, mediaspa.Production, "/app/", dist),
			origin + "/app/assets/index-af8s7f9.js",
		},
		{
			"unhashed",
			"favicon.ico",
			template.AssetURI(nil, mediaspa.Production, "/app/", dist),
			"/app/favicon.ico",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual := tc.fn(tc.filepath)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}
