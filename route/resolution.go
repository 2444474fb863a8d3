package route

import (
	"context"
	"fmt"
	"slices"

	"github.com/xy-planning-network/mediaspa"
)

// A Kind categorizes a Resolution.
type Kind int

const (
	NotFound Kind = iota
	Matched
	Redirected
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Redirected:
		return "redirect"
	default:
		return "not-found"
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "matched":
		*k = Matched
	case "redirect":
		*k = Redirected
	case "not-found":
		*k = NotFound
	default:
		return fmt.Errorf("%w: kind %q", mediaspa.ErrNotValid, b)
	}

	return nil
}

// A Match is a concrete route found in a Table.
type Match struct {
	Name    string `json:"name,omitempty"`
	Path    string `json:"path"`
	View    View   `json:"view"`
	Meta    Meta   `json:"meta,omitempty"`
	Layouts []View `json:"layouts,omitempty"`
}

func (m Match) clone() Match {
	m.Meta = m.Meta.clone()
	if len(m.Layouts) == 0 {
		m.Layouts = nil
	} else {
		m.Layouts = slices.Clone(m.Layouts)
	}

	return m
}

// A Resolution is the outcome of resolving a path against a Table.
type Resolution struct {
	Kind Kind `json:"kind"`

	// Path is the path as resolved, after any trailing slash trimming.
	Path string `json:"path"`

	// Target is the final path a redirect led to.
	// Target is empty unless Kind is Redirected.
	Target string `json:"target,omitempty"`

	// Match is the route found at Path, or at Target when redirected.
	// Match is the zero value when Kind is NotFound.
	Match Match `json:"match"`
}

// Found asserts whether r leads to a view.
func (r Resolution) Found() bool { return r.Kind != NotFound }

// Title returns the title of the matched route.
func (r Resolution) Title() string { return r.Match.Meta.Title() }

// NewContext stashes res in ctx.
func NewContext(ctx context.Context, res Resolution) context.Context {
	return context.WithValue(ctx, mediaspa.ResolutionKey, res)
}

// FromContext retrieves the Resolution stashed in ctx.
func FromContext(ctx context.Context) (Resolution, bool) {
	res, ok := ctx.Value(mediaspa.ResolutionKey).(Resolution)
	return res, ok
}
