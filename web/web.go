// Package web embeds the default route table and the built media client.
//
// Replace dist/ with the bundler's output before building a release binary.
package web

import (
	"embed"
	"io/fs"
)

// RoutesFile names the default route table within FS.
const RoutesFile = "routes.toml"

var (
	// FS holds RoutesFile.
	//
	//go:embed routes.toml
	FS embed.FS

	//go:embed all:dist
	dist embed.FS
)

// Dist returns the built client, rooted at its dist/ directory.
func Dist() fs.FS {
	sub, err := fs.Sub(dist, "dist")
	if err != nil {
		panic(err)
	}

	return sub
}
