package template

import (
	"fmt"
	html "html/template"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/route"
)

// BasePath encloses the path the client application is served under.
// It returns "basePath" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning base when called.
func BasePath(base string) (string, func() string) {
	return "basePath", func() string { return base }
}

// Env encloses some string representing an environment.
// It returns "env" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning the enclosed value when called.
func Env(e mediaspa.Environment) (string, func() string) {
	return "env", func() string { return e.String() }
}

// History encloses the history mode the client router runs in.
// It returns "history" as the name of the function for convenient passing to a template.FuncMap.
func History(mode route.HistoryMode) (string, func() string) {
	return "history", func() string { return mode.String() }
}

// Nonce returns "nonce" as the name of the function for convenient passing to a template.FuncMap
// and returns a function generating a uuid.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}

// RootUrl encloses the *url.URL representing the base URL of the web app.
// It returns "rootUrl" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning its *url.URL.String().
// If u is nil, that function will always return an empty string.
func RootUrl(u *url.URL) (string, func() string) {
	if u == nil {
		return "rootUrl", func() string { return "" }
	}

	s := u.String()
	return "rootUrl", func() string { return s }
}

// Title encloses the application name.
// It returns "title" as the name of the function for convenient passing to a template.FuncMap
// and returns a function joining a view's title to the application name.
func Title(app string) (string, func(string) string) {
	return "title", func(view string) string {
		switch {
		case view == "":
			return app
		case app == "":
			return view
		default:
			return view + " | " + app
		}
	}
}

// TagPacker wraps an asset function, usually the one AssetURI returns,
// so that executing a template emits a complete <script> or <link> tag for the asset.
//
// It returns "tag" as the name of the function for convenient passing to a template.FuncMap.
// If asset yields nothing, neither does the tag function.
func TagPacker(asset func(string) string) (string, func(string, bool) html.HTML) {
	return "tag", func(name string, isCSS bool) html.HTML {
		uri := asset(name)
		if uri == "" {
			return ""
		}

		tmpl := `<script src="%s" type="module"></script>`
		if isCSS {
			tmpl = `<link rel="stylesheet" href="%s">`
		}

		return html.HTML(fmt.Sprintf(tmpl, html.HTMLEscapeString(uri)))
	}
}
