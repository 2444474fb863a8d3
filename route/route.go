package route

import (
	"maps"
	"strings"
)

// MetaTitle is the Meta key holding the human-readable title of a route.
const MetaTitle = "title"

// A View references a lazily-loaded presentation unit, e.g., "views/video/index".
// The host decides what it points to; see [ViewLoader].
type View string

func (v View) String() string { return string(v) }

// Meta is display data attached to a Route.
type Meta map[string]string

// Title returns the value under [MetaTitle].
func (m Meta) Title() string { return m[MetaTitle] }

// clone copies m so callers cannot reach into a Table.
// The zero Meta clones into nil.
func (m Meta) clone() Meta {
	if len(m) == 0 {
		return nil
	}

	return maps.Clone(m)
}

// A Route maps a path to a View and the Meta displayed with it.
//
// A Route with Redirect set forwards resolution to that path and carries no View.
// A Route with Children wraps them in its View, acting as their layout.
type Route struct {
	Path     string  `toml:"path" json:"path"`
	Name     string  `toml:"name,omitempty" json:"name,omitempty"`
	View     View    `toml:"view,omitempty" json:"view,omitempty"`
	Meta     Meta    `toml:"meta,omitempty" json:"meta,omitempty"`
	Redirect string  `toml:"redirect,omitempty" json:"redirect,omitempty"`
	Children []Route `toml:"children,omitempty" json:"children,omitempty"`
}

// IsRedirect asserts whether r forwards to another path.
func (r Route) IsRedirect() bool { return r.Redirect != "" }

// IsLayout asserts whether r wraps child routes.
func (r Route) IsLayout() bool { return len(r.Children) > 0 }

// joinPath resolves child against parent the way nested routes do:
// absolute children stand alone, an empty child is the parent itself,
// and relative children hang off the parent.
func joinPath(parent, child string) string {
	switch {
	case strings.HasPrefix(child, "/"):
		return child
	case child == "":
		return parent
	case strings.HasSuffix(parent, "/"):
		return parent + child
	default:
		return parent + "/" + child
	}
}
