package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/mediaspa"
)

// A LogRequestRecord is the structured log line LogRequest writes for every request.
type LogRequestRecord struct {
	BodySize       int64         `json:"bodySize"`
	Duration       time.Duration `json:"duration"`
	Host           string        `json:"host"`
	ID             string        `json:"id"`
	IPAddr         string        `json:"ipAddr,omitempty"`
	Method         string        `json:"method"`
	Path           string        `json:"path"`
	Protocol       string        `json:"protocol"`
	Referrer       string        `json:"referrer,omitempty"`
	ReqContentType string        `json:"reqContentType,omitempty"`
	Scheme         string        `json:"scheme,omitempty"`
	Status         int           `json:"status"`
	URI            string        `json:"uri"`
	UserAgent      string        `json:"userAgent,omitempty"`
}

// LogValue implements [log/slog.LogValuer].
func (rec LogRequestRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("bodySize", rec.BodySize),
		slog.Duration("duration", rec.Duration),
		slog.String("host", rec.Host),
		slog.String("id", rec.ID),
		slog.String("ipAddr", rec.IPAddr),
		slog.String("method", rec.Method),
		slog.String("path", rec.Path),
		slog.String("protocol", rec.Protocol),
		slog.String("referrer", rec.Referrer),
		slog.String("reqContentType", rec.ReqContentType),
		slog.String("scheme", rec.Scheme),
		slog.Int("status", rec.Status),
		slog.String("uri", rec.URI),
		slog.String("userAgent", rec.UserAgent),
	)
}

// LogRequest writes a [LogRequestRecord] for every request to l
// once the wrapped handler responds.
//
// LogRequest masks the values for the "token" query parameter.
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l *slog.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			q := r.URL.Query()
			mediaspa.Mask(q, "token")
			uri := r.URL.Path
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			rec := LogRequestRecord{
				BodySize:       m.Written,
				Duration:       m.Duration,
				Host:           r.Host,
				ID:             mediaspa.RequestIDFromContext(r.Context()),
				IPAddr:         mediaspa.IPAddrFromContext(r.Context()),
				Method:         r.Method,
				Path:           r.URL.Path,
				Protocol:       r.Proto,
				Referrer:       r.Referer(),
				ReqContentType: r.Header.Get("Content-Type"),
				Scheme:         r.URL.Scheme,
				Status:         m.Code,
				URI:            uri,
				UserAgent:      r.UserAgent(),
			}

			l.LogAttrs(
				r.Context(),
				slog.LevelInfo,
				"",
				slog.Attr{Key: mediaspa.LogKindKey, Value: mediaspa.HTTPLogKind},
				slog.Any("request", rec),
			)
		})
	}
}
