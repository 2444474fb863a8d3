package logger

import (
	"encoding"
	"encoding/json"
	"net/http"

	"github.com/xy-planning-network/mediaspa"
)

var (
	_ encoding.TextMarshaler = LogContext{}
)

// A LogContext provides additional information for a [Logger] method
// that cannot be tersely captured in the message itself.
type LogContext struct {
	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// Values in LogContext.Data that cannot be represented in JSON will cause an error to be thrown.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		q := lc.Request.URL.Query()
		mediaspa.Mask(q, "token")

		u := *lc.Request.URL
		u.RawQuery = q.Encode()

		r := map[string]any{
			"method": lc.Request.Method,
			"url":    u.String(),
		}

		if id := mediaspa.RequestIDFromContext(lc.Request.Context()); id != "" {
			r["id"] = id
		}

		m["request"] = r
	}

	return json.Marshal(m)
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return ""
	}

	return string(b)
}
