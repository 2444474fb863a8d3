package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/middleware"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for resources to their location in a mediaspa app.
type Router struct {
	Env           mediaspa.Environment
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
func New(env mediaspa.Environment) *Router {
	return &Router{Env: env, r: mux.NewRouter()}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = r.chain(handler)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(middlewares[:len(middlewares):len(middlewares)], route.Middlewares...)
		r.r.Handle(route.Path, r.chain(route.Handler, mws...)).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Only routes registered afterwards use them.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/app/") handles requests to endpoints like /app/video
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		everyReqStack: r.everyReqStack,
	}
}

// Walk calls fn with the path template of every registered Route.
func (r *Router) Walk(fn func(tmpl string, methods []string)) error {
	return r.r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tmpl, err := route.GetPathTemplate()
		if err != nil {
			// matcher routes, like a mounted proxy, have no template
			return nil
		}

		methods, _ := route.GetMethods()
		fn(tmpl, methods)
		return nil
	})
}

// chain wraps handler in the every request stack, then middlewares.
func (r *Router) chain(handler http.Handler, middlewares ...middleware.Adapter) http.Handler {
	mws := append(r.everyReqStack[:len(r.everyReqStack):len(r.everyReqStack)], middlewares...)
	return middleware.Chain(middleware.ReportPanic(r.Env)(handler), mws...)
}
