package mediaspa

import (
	"log/slog"
	"net/url"
)

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

var (
	AppLogKind  = slog.StringValue("app")
	HTTPLogKind = slog.StringValue("http")

	// MaskedLogValue is a convenience [log/slog.Value]
	// to be used in implementations of [log/slog.LogValuer]
	// to hide sensitive data from log messages.
	MaskedLogValue = slog.StringValue(LogMaskVal)
)

// Mask replaces all values for key in vals with a single [LogMaskVal].
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}
