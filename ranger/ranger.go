package ranger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/proxy"
	"github.com/xy-planning-network/mediaspa/http/resp"
	"github.com/xy-planning-network/mediaspa/http/router"
	"github.com/xy-planning-network/mediaspa/logger"
	"github.com/xy-planning-network/mediaspa/route"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a mediaspa app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	app     string
	base    string
	cancel  context.CancelFunc
	cors    string
	ctx     context.Context
	dist    fs.FS
	env     mediaspa.Environment
	history route.HistoryMode
	httpLog *slog.Logger
	l       logger.Logger
	loader  route.ViewLoader
	origin  *url.URL
	proxy   *proxy.Proxy
	srv     *http.Server
	table   *route.Table
	url     *url.URL
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", mediaspa.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", mediaspa.ErrBadConfig, err)
		}
	}

	if err := r.assemble(); err != nil {
		return nil, fmt.Errorf("%w: %s", mediaspa.ErrBadConfig, err)
	}

	return r, nil
}

// assemble builds the server, responder and router no option supplied,
// in that order.
func (r *Ranger) assemble() error {
	if r.table == nil {
		return errors.New("no route table")
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.srv == nil {
		r.srv = defaultServer()
	}
	r.srv.BaseContext = func(_ net.Listener) context.Context { return r.ctx }

	if r.Responder == nil {
		r.Responder = defaultResponder(r)
	}

	if r.Router == nil {
		rt, err := defaultRouter(r)
		if err != nil {
			return err
		}

		r.Router = rt
	}

	r.srv.Handler = r.Router
	r.l.Debug(fmt.Sprintf("serving %s in %s mode", r.base, r.history), nil)

	return nil
}

func (r *Ranger) EmitBase() string               { return r.base }
func (r *Ranger) EmitDist() fs.FS                { return r.dist }
func (r *Ranger) EmitEnv() mediaspa.Environment  { return r.env }
func (r *Ranger) EmitHistory() route.HistoryMode { return r.history }
func (r *Ranger) EmitLogger() logger.Logger      { return r.l }
func (r *Ranger) EmitProxy() *proxy.Proxy        { return r.proxy }
func (r *Ranger) EmitServer() *http.Server       { return r.srv }
func (r *Ranger) EmitTable() *route.Table        { return r.table }

// EmitURL returns a copy of the base URL the app is reachable at.
func (r *Ranger) EmitURL() *url.URL {
	u := *r.url
	return &u
}

// Cancel stops Guide the way a shutdown signal does.
func (r *Ranger) Cancel() { r.cancel() }

// Guide begins the web server.
//
// These, and [*Ranger.Cancel], stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(
		r.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s%s", r.url.Host, r.base), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("could not listen: %w", err)
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		if err != nil {
			r.l.Error(err.Error(), nil)
			return err
		}

		return nil

	case <-ctx.Done():
		r.l.Info("received shutdown signal", nil)
	}

	return r.Shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	if err := r.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	if sl, ok := r.l.(*logger.SentryLogger); ok {
		sl.Flush(shutdownTimeout)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
