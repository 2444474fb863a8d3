package template

import (
	"io/fs"
	"net/url"

	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/route"
)

// EntryConfig configures the functions the entry page calls.
type EntryConfig struct {
	// App names the application in page titles.
	App string

	// Base is the path the client is served under, e.g. /app/.
	Base string

	Env mediaspa.Environment

	// Dist holds the built client.
	Dist fs.FS

	History route.HistoryMode

	// Origin serves assets when not served from the same host.
	Origin *url.URL
}

// NewEntryParser constructs a *Parse looking up templates in cfg.Dist first
// with every function the entry page calls already added.
func NewEntryParser(cfg EntryConfig, opts ...ParserOptFn) *Parse {
	if cfg.Dist != nil {
		opts = append([]ParserOptFn{WithFS(cfg.Dist)}, opts...)
	}

	p := NewParser(opts...)

	asset := AssetURI(cfg.Origin, cfg.Env, cfg.Base, cfg.Dist)
	p.AddFn("asset", asset)
	p.AddFn(TagPacker(asset))
	p.AddFn(BasePath(cfg.Base))
	p.AddFn(Env(cfg.Env))
	p.AddFn(History(cfg.History))
	p.AddFn(Nonce())
	p.AddFn(Title(cfg.App))

	return p
}
