// Package proxy forwards API calls from the client to an upstream origin during development.
package proxy

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/logger"
)

// DefaultPrefix is the path prefix client API calls carry.
const DefaultPrefix = "/api"

var (
	ErrNoTarget = fmt.Errorf("%w: no proxy target", mediaspa.ErrBadConfig)
	ErrPrefix   = fmt.Errorf("%w: proxy prefix", mediaspa.ErrBadConfig)
)

// Config describes where and how requests are forwarded.
type Config struct {
	// Prefix is stripped from every forwarded path.
	Prefix string

	// Target is the upstream origin, e.g. http://113.45.79.44.
	Target *url.URL

	// ChangeOrigin rewrites the Host header to Target's host.
	ChangeOrigin bool
}

// A Proxy is an http.Handler forwarding requests under a prefix to an upstream origin.
type Proxy struct {
	cfg Config
	rp  *httputil.ReverseProxy
}

// New constructs a Proxy from cfg, logging upstream failures to l.
//
// An empty cfg.Prefix becomes DefaultPrefix.
func New(cfg Config, l logger.Logger) (*Proxy, error) {
	if cfg.Target == nil || cfg.Target.Host == "" {
		return nil, ErrNoTarget
	}

	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}

	cfg.Prefix = "/" + strings.Trim(cfg.Prefix, "/")
	if cfg.Prefix == "/" {
		return nil, fmt.Errorf("%w: %q forwards everything", ErrPrefix, cfg.Prefix)
	}

	if l == nil {
		l = logger.NewLogger()
	}

	p := &Proxy{cfg: cfg}
	p.rp = &httputil.ReverseProxy{
		Rewrite: p.rewrite,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			if errors.Is(err, r.Context().Err()) {
				return
			}

			l.Error(
				fmt.Sprintf("proxying %s to %s", r.URL.Path, cfg.Target.Host),
				&logger.LogContext{Error: err, Request: r},
			)
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	return p, nil
}

// Prefix returns the path prefix the Proxy forwards.
func (p *Proxy) Prefix() string { return p.cfg.Prefix }

// Target returns the upstream origin.
func (p *Proxy) Target() *url.URL {
	u := *p.cfg.Target
	return &u
}

// ServeHTTP implements http.Handler.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.rp.ServeHTTP(w, r)
}

// Match reports whether path lies under the Proxy's prefix.
func (p *Proxy) Match(path string) bool {
	return path == p.cfg.Prefix || strings.HasPrefix(path, p.cfg.Prefix+"/")
}

// StripPrefix removes the Proxy's prefix from path, keeping it absolute.
//
// e.g.,:
// /api/videos => /videos
// /api => /
func (p *Proxy) StripPrefix(path string) string {
	if !p.Match(path) {
		return path
	}

	rest := strings.TrimPrefix(path, p.cfg.Prefix)
	if rest == "" {
		return "/"
	}

	return rest
}

func (p *Proxy) rewrite(pr *httputil.ProxyRequest) {
	host := pr.In.Host

	pr.Out.URL.Path = p.StripPrefix(pr.In.URL.Path)
	pr.Out.URL.RawPath = ""
	if pr.In.URL.RawPath != "" {
		pr.Out.URL.RawPath = p.StripPrefix(pr.In.URL.RawPath)
	}

	pr.SetURL(p.cfg.Target)
	pr.SetXForwarded()

	if !p.cfg.ChangeOrigin {
		pr.Out.Host = host
	}
}
