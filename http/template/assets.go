package template

import (
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/xy-planning-network/mediaspa"
)

// DevServerOrigin is where the Vite development server listens by default.
const DevServerOrigin = "http://localhost:5173"

// AssetURI encloses the environment and filesystem so when called executing a template,
// emits valid URI for client side static and bundled assets.
//
// In development, URIs point at origin, or DevServerOrigin when origin is nil.
// Elsewhere, URIs point at origin, or the serving host when origin is nil,
// and resolve to the hashed file Vite emitted into filesys.
func AssetURI(origin *url.URL, env mediaspa.Environment, base string, filesys fs.FS) func(string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	var host string
	if origin != nil {
		host = strings.TrimSuffix(origin.String(), "/")
	}

	if env.IsDevelopment() && host == "" {
		host = DevServerOrigin
	}

	return func(assetPath string) string {
		assetPath = strings.TrimPrefix(assetPath, "/")

		switch {
		case env.IsTesting():
			return ""

		case env.IsDevelopment(), filesys == nil:
			return host + base + assetPath

		default:
			return host + base + hashed(filesys, assetPath)
		}
	}
}

// hashed finds the file Vite emitted for assetPath.
//
// Note: where assetPath = assets/index.js
// glob = assets/index-*.js
func hashed(filesys fs.FS, assetPath string) string {
	ext := path.Ext(assetPath)
	glob := fmt.Sprintf("%s-*%s", strings.TrimSuffix(assetPath, ext), ext)

	matches, err := fs.Glob(filesys, glob)
	if err != nil || len(matches) == 0 {
		return assetPath
	}

	return matches[0]
}
