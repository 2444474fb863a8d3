package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/mediaspa/http/middleware"
	"github.com/xy-planning-network/mediaspa/http/proxy"
)

// MountProxy forwards every request under p's prefix to p,
// applying middlewares after those applied on every request.
//
// Mount the proxy before MountSPA when the SPA base is "/" in history mode;
// otherwise the entry page claims the prefix first.
func (r *Router) MountProxy(p *proxy.Proxy, middlewares ...middleware.Adapter) {
	r.r.MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		return p.Match(req.URL.Path)
	}).Handler(r.chain(p, middlewares...))
}
