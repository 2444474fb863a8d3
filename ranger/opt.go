package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/proxy"
	"github.com/xy-planning-network/mediaspa/http/resp"
	"github.com/xy-planning-network/mediaspa/http/router"
	"github.com/xy-planning-network/mediaspa/logger"
	"github.com/xy-planning-network/mediaspa/route"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithTable is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRouter is an example of the second.
// An unexported field on the passed in *Ranger
// is updated only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithBase sets the path the client is served under, e.g. /app/.
func WithBase(base string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.base = router.NormalizeBase(base)
		rng.debug(fmt.Sprintf("using base %s", rng.base))

		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the mediaspa app.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		rng.debug(fmt.Sprintf("using context %T", ctx))

		return nil, nil
	}
}

// WithCORS allows cross-origin requests from origin.
func WithCORS(origin string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.cors = origin
		rng.debug(fmt.Sprintf("using CORS origin %q", origin))

		return nil, nil
	}
}

// WithDist exposes the built client to the mediaspa app.
func WithDist(dist fs.FS) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.dist = dist
		rng.debug(fmt.Sprintf("using dist %T", dist))

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := mediaspa.Environment(envVar)
		if err := e.Valid(); err != nil {
			e = mediaspa.EnvVarOrEnv(environmentEnvVar, mediaspa.Development)
		}

		rng.env = e
		rng.debug(fmt.Sprintf("using env %s", e))

		return nil, nil
	}
}

// WithHistory sets how URLs map onto route paths,
// overriding the route table document.
func WithHistory(h route.HistoryMode) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := h.Valid(); err != nil {
			return nil, err
		}

		rng.history = h
		rng.debug(fmt.Sprintf("using history %s", h))

		return nil, nil
	}
}

// WithHTTPLogger exposes the *slog.Logger requests are logged to.
func WithHTTPLogger(l *slog.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.httpLog = l
		rng.debug("using HTTP logger")

		return nil, nil
	}
}

// WithLoader exposes the route.ViewLoader reporting chunks for each view.
func WithLoader(l route.ViewLoader) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.loader = l
		rng.debug(fmt.Sprintf("using loader %T", l))

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the mediaspa app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		rng.debug(fmt.Sprintf("using logger %T", l))

		return nil, nil
	}
}

// WithOrigin serves assets from origin instead of the app's own host.
func WithOrigin(origin *url.URL) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.origin = origin
		rng.debug(fmt.Sprintf("using asset origin %s", origin))

		return nil, nil
	}
}

// WithProxy forwards API calls through p regardless of the Environment.
func WithProxy(p *proxy.Proxy) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.proxy = p
		rng.debug(fmt.Sprintf("using proxy to %s", p.Target()))

		return nil, nil
	}
}

// WithResponder constructs a followup option that, when called,
// exposes the *resp.Responder to the mediaspa app.
func WithResponder(r *resp.Responder) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.Responder = r
			rng.debug("using responder")

			return nil
		}, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the mediaspa app.
//
// The SPA and proxy are not mounted onto r.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.Router = r
			rng.debug(fmt.Sprintf("using router %T", r))

			return nil
		}, nil
	}
}

// WithRoutes loads the route table document name from fsys.
// The document's history mode applies unless set otherwise.
func WithRoutes(fsys fs.FS, name string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return nil, rng.loadRoutes(fsys, name)
	}
}

// WithServer exposes the *http.Server to the mediaspa app.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.srv = s
		rng.debug(fmt.Sprintf("using server at %s", s.Addr))

		return nil, nil
	}
}

// WithTable exposes the provided *route.Table to the mediaspa app.
func WithTable(t *route.Table) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.table = t
		rng.debug(fmt.Sprintf("using table of %d paths", len(t.Paths())))

		return nil, nil
	}
}

// WithTitle names the app in page titles.
func WithTitle(app string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.app = app
		return nil, nil
	}
}

// debug logs msg once a logger is available.
func (r *Ranger) debug(msg string) {
	if r.l != nil {
		r.l.Debug(msg, nil)
	}
}

// loadRoutes builds the table described by name in fsys.
func (r *Ranger) loadRoutes(fsys fs.FS, name string) error {
	cfg, err := route.Load(fsys, name)
	if err != nil {
		return err
	}

	t, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	r.table = t
	if r.history == "" {
		r.history = cfg.History
	}
	r.debug(fmt.Sprintf("using routes from %s", name))

	return nil
}
