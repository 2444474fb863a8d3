package router

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/middleware"
	"github.com/xy-planning-network/mediaspa/http/req"
	"github.com/xy-planning-network/mediaspa/http/resp"
	"github.com/xy-planning-network/mediaspa/route"
)

const (
	assetsPath  = "assets/"
	assetsTTL   = 30 * 24 * time.Hour
	resolvePath = "_resolve"
	routesPath  = "_routes"
)

// A SPA is the single page application MountSPA serves.
type SPA struct {
	// Base is the path the application is served under; it always ends in "/".
	Base string

	// Dist holds the built client; without it no assets are served.
	Dist fs.FS

	History route.HistoryMode

	// Loader finds the chunks for each resolution _resolve reports.
	// Without it, _resolve reports no chunks.
	Loader route.ViewLoader

	Responder *resp.Responder
	Table     *route.Table
}

// A Page is what the entry page renders.
type Page struct {
	Title      string
	Resolution route.Resolution
}

// A Manifest describes the route table for clients.
type Manifest struct {
	Base    string             `json:"base"`
	History route.HistoryMode  `json:"history"`
	Strict  bool               `json:"strict"`
	Paths   []route.Resolution `json:"paths"`
	Routes  []route.Route      `json:"routes"`
}

// A Resolved is the outcome of resolving a path for a client.
type Resolved struct {
	route.Resolution

	// Href is the path as it appears in the address bar.
	Href string `json:"href"`

	// Chunks are the URIs of the layouts' and view's chunks, outermost first.
	Chunks []string `json:"chunks,omitempty"`
}

// NormalizeBase turns base into an absolute path ending in "/".
func NormalizeBase(base string) string {
	base = strings.Trim(base, "/")
	if base == "" {
		return "/"
	}

	return "/" + base + "/"
}

// MountSPA registers the entry page, assets, manifest and resolve endpoints of spa.
func (r *Router) MountSPA(spa SPA) error {
	if spa.Table == nil {
		return fmt.Errorf("%w: no route table", mediaspa.ErrBadConfig)
	}

	if spa.Responder == nil {
		return fmt.Errorf("%w: no responder", mediaspa.ErrBadConfig)
	}

	if err := spa.History.Valid(); err != nil {
		return fmt.Errorf("%w: %s", mediaspa.ErrBadConfig, err)
	}

	spa.Base = NormalizeBase(spa.Base)
	s := &spaHandler{SPA: spa, params: req.NewParser()}
	get := []string{http.MethodGet, http.MethodHead}

	if spa.Base != "/" {
		r.r.Handle(strings.TrimSuffix(spa.Base, "/"), r.chain(http.RedirectHandler(spa.Base, http.StatusMovedPermanently)))
	}

	if spa.Dist != nil {
		assets := http.StripPrefix(spa.Base, http.FileServer(http.FS(spa.Dist)))
		r.r.PathPrefix(spa.Base + assetsPath).
			Handler(r.chain(assets, middleware.CacheControl(assetsTTL))).
			Methods(get...)
	}

	r.HandleRoutes([]Route{
		{Path: spa.Base + routesPath, Method: http.MethodGet, Handler: s.manifest},
		{Path: spa.Base + resolvePath, Method: http.MethodGet, Handler: s.resolve},
		{Path: spa.Base + "index.html", Method: http.MethodGet, Handler: s.entry},
	})

	entry := r.chain(http.HandlerFunc(s.entry), s.resolveRequest)
	r.r.Handle(spa.Base, entry).Methods(get...)
	if spa.History == route.History {
		r.r.PathPrefix(spa.Base).Handler(entry).Methods(get...)
	}

	return nil
}

type spaHandler struct {
	SPA
	params *req.Parser
}

// resolveRequest stashes the resolution of the request's route path in its context.
func (s *spaHandler) resolveRequest(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := route.Resolution{Kind: route.NotFound, Path: r.URL.Path}
		if path, ok := s.History.PathFromURL(s.Base, r.URL); ok {
			res = s.Table.Resolve(path)
		}

		h.ServeHTTP(w, r.WithContext(route.NewContext(r.Context(), res)))
	})
}

// entry renders the entry page for the resolution in the request's context,
// or for the default route without one.
func (s *spaHandler) entry(w http.ResponseWriter, r *http.Request) {
	res, ok := route.FromContext(r.Context())
	if !ok {
		res = s.Table.Default()
	}

	page := Page{Title: res.Title(), Resolution: res}
	switch {
	case res.Kind == route.Redirected && s.History == route.History:
		s.Responder.Redirect(w, r, resp.Url(s.History.Href(s.Base, res.Target)), resp.Query(r.URL.Query()))

	case res.Kind == route.NotFound:
		s.Responder.Html(w, r, resp.Entry(), resp.Data(page), resp.Code(http.StatusNotFound))

	default:
		s.Responder.Html(w, r, resp.Entry(), resp.Data(page))
	}
}

// manifest lists the route table.
func (s *spaHandler) manifest(w http.ResponseWriter, r *http.Request) {
	paths := s.Table.Paths()
	m := Manifest{
		Base:    s.Base,
		History: s.History,
		Strict:  s.Table.Strict(),
		Paths:   make([]route.Resolution, 0, len(paths)),
		Routes:  s.Table.Routes(),
	}

	for _, p := range paths {
		m.Paths = append(m.Paths, s.Table.Resolve(p))
	}

	s.Responder.Json(w, r, resp.Data(m))
}

// A resolveQuery is what _resolve reads from the query string.
type resolveQuery struct {
	// Path is a route path or a full URL of the application.
	Path string `schema:"path" validate:"required,startswith=/|url"`

	// History renders Href in another mode than the one served.
	History route.HistoryMode `schema:"history" validate:"omitempty,enum"`
}

// resolve reports the resolution of the "path" query parameter,
// which may also be a full URL of the application.
// A full URL is read in the served history mode; "history" only changes Href.
func (s *spaHandler) resolve(w http.ResponseWriter, r *http.Request) {
	var q resolveQuery
	if err := s.params.ParseQueryParams(r.URL.Query(), &q); err != nil {
		var verrs req.ValidationErrors
		errors.As(err, &verrs)
		s.Responder.Json(w, r,
			resp.NotFound(fmt.Errorf("%w: %s", mediaspa.ErrMissingData, err)),
			resp.Data(verrs),
			resp.Code(http.StatusBadRequest),
		)
		return
	}

	path := q.Path
	if u, err := url.Parse(q.Path); err == nil && u.IsAbs() {
		var ok bool
		if path, ok = s.History.PathFromURL(s.Base, u); !ok {
			s.Responder.Json(w, r,
				resp.NotFound(fmt.Errorf("%w: %s lies outside %s", mediaspa.ErrNotValid, q.Path, s.Base)),
				resp.Code(http.StatusBadRequest),
			)
			return
		}
	}

	out := Resolved{Resolution: s.Table.Resolve(path)}
	if !out.Found() {
		s.Responder.Json(w, r,
			resp.NotFound(fmt.Errorf("%w: %s", mediaspa.ErrNotExist, out.Path)),
			resp.Data(out),
		)
		return
	}

	mode := s.History
	if q.History != "" {
		mode = q.History
	}

	out.Href = mode.Href(s.Base, out.Path)
	if out.Kind == route.Redirected {
		out.Href = mode.Href(s.Base, out.Target)
	}

	if s.Loader != nil {
		units, err := route.LoadMatch(r.Context(), s.Loader, out.Match)
		switch {
		case errors.Is(err, route.ErrViewNotExist):
			// unbuilt client; report the route without chunks
		case err != nil:
			s.Responder.Json(w, r, resp.Err(err))
			return
		}

		for _, u := range units {
			out.Chunks = append(out.Chunks, s.Base+u.Path)
		}
	}

	s.Responder.Json(w, r, resp.Data(out))
}
