package ranger

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/middleware"
	"github.com/xy-planning-network/mediaspa/http/proxy"
	"github.com/xy-planning-network/mediaspa/http/resp"
	"github.com/xy-planning-network/mediaspa/http/router"
	"github.com/xy-planning-network/mediaspa/http/template"
	"github.com/xy-planning-network/mediaspa/logger"
	"github.com/xy-planning-network/mediaspa/route"
	"github.com/xy-planning-network/mediaspa/web"
)

const (
	// App metadata
	AppTitleEnvVar  = "APP_TITLE"
	DefaultAppTitle = "mediaspa"

	// Client defaults
	assetsDir        = "assets"
	assetsURLEnvVar  = "ASSETS_URL"
	basePathEnvVar   = "BASE_PATH"
	DefaultBasePath  = "/app/"
	corsOriginEnvVar = "CORS_ORIGIN"
	distDirEnvVar    = "DIST_DIR"
	historyEnvVar    = "HISTORY_MODE"
	routesFileEnvVar = "ROUTES_FILE"

	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = slog.LevelInfo
	logJSONEnvVar   = "LOG_JSON"
	defaultLogJSON  = false
	sentryDsnEnvVar = "SENTRY_DSN"

	// Proxy defaults
	proxyForceEnvVar  = "PROXY_FORCE"
	proxyPrefixEnvVar = "PROXY_PREFIX"
	proxyTargetEnvVar = "PROXY_TARGET"

	// Default HTML template files
	defaultErrTmpl = "error.html"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// defaultOpts configures a *Ranger from environment variables
// wherever no RangerOption supplied to New does so.
//
// Immediate defaults run before every RangerOption supplied to New;
// their followups run before every followup those return.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(""),
		func(rng *Ranger) (OptFollowup, error) {
			rng.app = mediaspa.EnvVarOrString(AppTitleEnvVar, DefaultAppTitle)
			rng.base = router.NormalizeBase(mediaspa.EnvVarOrString(basePathEnvVar, DefaultBasePath))
			rng.cors = os.Getenv(corsOriginEnvVar)
			rng.origin = mediaspa.EnvVarOrURL(assetsURLEnvVar, "")
			rng.url = defaultURL()
			if v := os.Getenv(historyEnvVar); v != "" {
				h, err := route.ParseHistoryMode(v)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", historyEnvVar, err)
				}

				rng.history = h
			}

			return nil, nil
		},
		func(rng *Ranger) (OptFollowup, error) {
			return func() error {
				if rng.l == nil {
					rng.l = defaultAppLogger(rng.env, os.Stdout)
				}

				if rng.httpLog == nil {
					rng.httpLog = defaultHTTPLogger(rng.env, os.Stdout)
				}

				if rng.table == nil {
					if err := rng.defaultTable(); err != nil {
						return err
					}
				}

				if rng.history == "" {
					rng.history = route.Hash
				}

				if rng.dist == nil {
					rng.dist = defaultDist()
				}

				if rng.loader == nil {
					rng.loader = route.NewFSLoader(rng.dist, assetsDir)
				}

				if rng.proxy == nil {
					p, err := defaultProxy(rng.env, rng.l)
					if err != nil {
						return err
					}

					rng.proxy = p
				}

				return nil
			}, nil
		},
	}
}

// defaultAppLogger constructs a [logger.Logger] configured for use in the application.
func defaultAppLogger(env mediaspa.Environment, output io.Writer) logger.Logger {
	cl := logger.NewLogger(
		logger.WithEnv(env.String()),
		logger.WithLevel(mediaspa.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
		logger.WithLogger(log.New(output, "", log.LstdFlags)),
	)
	cl.Debug("setting up app logger", nil)

	var l logger.Logger = cl
	if dsn := os.Getenv(sentryDsnEnvVar); dsn != "" {
		l = logger.NewSentryLogger(env.String(), cl, dsn)
		l.Debug("using SentryLogger for app logger", nil)
	}

	return l
}

// defaultHTTPLogger constructs a [*log/slog.Logger] for use in HTTP router logging.
//
// Records are JSON outside Development or when LOG_JSON is true.
// Neither level nor message is written; each record carries the request alone.
func defaultHTTPLogger(env mediaspa.Environment, output io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a = logger.DeleteLevelAttr(groups, a)
			return logger.DeleteMessageAttr(groups, a)
		},
	}

	var handler slog.Handler = slog.NewTextHandler(output, opts)
	if !env.IsDevelopment() || mediaspa.EnvVarOrBool(logJSONEnvVar, defaultLogJSON) {
		handler = slog.NewJSONHandler(output, opts)
	}

	return slog.New(handler)
}

// defaultDist reads the built client from DIST_DIR,
// or from the copy embedded in the binary.
func defaultDist() fs.FS {
	if dir := os.Getenv(distDirEnvVar); dir != "" {
		return os.DirFS(dir)
	}

	return web.Dist()
}

// defaultProxy constructs the development proxy when PROXY_TARGET is set.
//
// Environments not allowing it skip the proxy unless PROXY_FORCE is true.
func defaultProxy(env mediaspa.Environment, l logger.Logger) (*proxy.Proxy, error) {
	target := mediaspa.EnvVarOrURL(proxyTargetEnvVar, "")
	if target == nil {
		return nil, nil
	}

	if !env.AllowsDevProxy() && !mediaspa.EnvVarOrBool(proxyForceEnvVar, false) {
		l.Warn(fmt.Sprintf("ignoring %s in %s", proxyTargetEnvVar, env), nil)
		return nil, nil
	}

	cfg := proxy.Config{
		Prefix:       mediaspa.EnvVarOrString(proxyPrefixEnvVar, proxy.DefaultPrefix),
		Target:       target,
		ChangeOrigin: true,
	}

	return proxy.New(cfg, l)
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(r *Ranger) *resp.Responder {
	p := template.NewEntryParser(template.EntryConfig{
		App:     r.app,
		Base:    r.base,
		Env:     r.env,
		Dist:    r.dist,
		History: r.history,
		Origin:  r.origin,
	})

	root := r.url.JoinPath(r.base)

	return resp.NewResponder(
		resp.WithEntryTemplate(template.EntryPage),
		resp.WithErrTemplate(defaultErrTmpl),
		resp.WithLogger(r.l),
		resp.WithParser(p),
		resp.WithRootUrl(root.String()),
	)
}

// defaultRouter constructs a [*router.Router] serving the client app
// and, if configured, the development proxy.
func defaultRouter(r *Ranger) (*router.Router, error) {
	rt := router.New(r.env)
	rt.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(r.httpLog),
		middleware.ForceHTTPS(r.env),
		middleware.CORS(r.cors),
		middleware.Compress(),
	)

	if r.proxy != nil {
		rt.MountProxy(r.proxy, middleware.RateLimit(middleware.NewVisitors()))
	}

	err := rt.MountSPA(router.SPA{
		Base:      r.base,
		Dist:      r.dist,
		History:   r.history,
		Loader:    r.loader,
		Responder: r.Responder,
		Table:     r.table,
	})
	if err != nil {
		return nil, err
	}

	rt.HandleNotFound(func(w http.ResponseWriter, req *http.Request) {
		r.Responder.Json(w, req, resp.NotFound(fmt.Errorf("%w: %s", mediaspa.ErrNotExist, req.URL.Path)))
	})

	return rt, nil
}

// defaultServer constructs a default [*http.Server].
func defaultServer() *http.Server {
	return &http.Server{
		Addr:         defaultPort(),
		IdleTimeout:  mediaspa.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  mediaspa.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: mediaspa.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}

// defaultTable loads the route table document named by ROUTES_FILE,
// or the one embedded in the binary.
func (r *Ranger) defaultTable() error {
	return r.loadRoutes(RoutesSource(os.Getenv(routesFileEnvVar)))
}

// RoutesSource locates the route table document at fp,
// or the one embedded in the binary when fp is empty.
func RoutesSource(fp string) (fs.FS, string) {
	if fp == "" {
		return web.FS, web.RoutesFile
	}

	dir, name := filepath.Split(fp)
	if dir == "" {
		dir = "."
	}

	return os.DirFS(dir), name
}

// defaultPort reads PORT, prefixing it with ":" if need be.
func defaultPort() string {
	port := mediaspa.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	return port
}

// defaultURL reads BASE_URL, or builds it from HOST and PORT.
func defaultURL() *url.URL {
	def := "http://" + mediaspa.EnvVarOrString(hostEnvVar, DefaultHost) + defaultPort()
	if u := mediaspa.EnvVarOrURL(BaseURLEnvVar, def); u != nil {
		return u
	}

	return &url.URL{Scheme: "http", Host: DefaultHost + DefaultPort}
}
