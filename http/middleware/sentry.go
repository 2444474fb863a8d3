package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/mediaspa"
)

// ReportPanic recovers panics in the wrapped handler and reports them to Sentry,
// except in development, where panics surface as usual.
func ReportPanic(env mediaspa.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(h)
	}
}
