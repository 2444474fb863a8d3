package route

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xy-planning-network/mediaspa"
)

// A HistoryMode is how the browser's address bar encodes a route path.
//
// Resolving is identical under either mode;
// only the mapping between a URL and a path differs.
type HistoryMode string

const (
	// Hash keeps the path after a "#": /app/#/video.
	// The server only ever sees the base path.
	Hash HistoryMode = "hash"

	// History uses the full URL path: /app/video.
	// The server must answer every route path with the entry page.
	History HistoryMode = "history"
)

var _ mediaspa.Enumerable = Hash

func (h HistoryMode) String() string { return string(h) }

func (h HistoryMode) Valid() error {
	switch h {
	case Hash, History:
		return nil
	default:
		return fmt.Errorf("%w: history mode %q", mediaspa.ErrNotValid, string(h))
	}
}

// ParseHistoryMode reads s, ignoring case, into a HistoryMode.
func ParseHistoryMode(s string) (HistoryMode, error) {
	h := HistoryMode(strings.ToLower(strings.TrimSpace(s)))
	if err := h.Valid(); err != nil {
		return "", err
	}

	return h, nil
}

// Href renders path as it appears in the address bar of an application served at base.
func (h HistoryMode) Href(base, path string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	if h == History {
		return base + strings.TrimPrefix(path, "/")
	}

	return base + "#" + path
}

// PathFromURL extracts the route path from u for an application served at base.
// The boolean is false when u lies outside base.
func (h HistoryMode) PathFromURL(base string, u *url.URL) (string, bool) {
	prefix := strings.TrimSuffix(base, "/")
	if u.Path != prefix && !strings.HasPrefix(u.Path, prefix+"/") {
		return "", false
	}

	if h == Hash {
		if u.Fragment == "" {
			return Root, true
		}

		return u.Fragment, true
	}

	rest := strings.TrimPrefix(u.Path, prefix)
	if rest == "" {
		return Root, true
	}

	return rest, true
}
