package route

import (
	"fmt"
	"slices"
	"strings"
)

// Root is the path every Table must resolve.
const Root = "/"

// An entry is a flattened Route.
type entry struct {
	match    Match
	redirect string

	// target is the end of the redirect chain starting at this entry.
	target string
}

// A Table holds the validated, flattened routes of an application.
// A Table is immutable and safe for concurrent use.
type Table struct {
	entries map[string]entry
	names   map[string]string
	order   []string
	routes  []Route
	strict  bool
}

// A TableOption configures a Table under construction.
type TableOption func(*Table)

// WithStrict sets whether a trailing slash is significant.
// Tables are strict by default: "/video/" does not match "/video".
func WithStrict(strict bool) TableOption {
	return func(t *Table) { t.strict = strict }
}

// New flattens and validates routes into a Table.
//
// New fails when:
//   - two routes share a path or a name
//   - a route has neither a view nor a redirect, or has both
//   - a redirect points to a path no route claims
//   - redirects form a cycle
//   - Root does not resolve
func New(routes []Route, opts ...TableOption) (*Table, error) {
	t := &Table{
		entries: make(map[string]entry),
		names:   make(map[string]string),
		strict:  true,
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.flatten(routes, "", nil); err != nil {
		return nil, err
	}

	if err := t.followRedirects(); err != nil {
		return nil, err
	}

	if _, ok := t.entries[Root]; !ok {
		return nil, fmt.Errorf("%w: no route claims %q", ErrNoDefault, Root)
	}

	t.routes = cloneRoutes(routes)

	return t, nil
}

// flatten walks routes depth first, registering every path.
// Children register before their layout so a child sharing
// the layout's path claims it first.
func (t *Table) flatten(routes []Route, parent string, layouts []View) error {
	for _, r := range routes {
		if r.Path == "" && parent == "" {
			return fmt.Errorf("%w: top-level route %q has no path", ErrInvalidRoute, r.Name)
		}

		if parent == "" && !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("%w: top-level path %q must start with /", ErrInvalidRoute, r.Path)
		}

		full := t.normalize(joinPath(parent, r.Path))

		if r.IsRedirect() && (r.View != "" || r.IsLayout()) {
			return fmt.Errorf("%w: %s redirects and also renders", ErrInvalidRoute, full)
		}

		if !r.IsRedirect() && r.View == "" {
			return fmt.Errorf("%w: %s", ErrNoView, full)
		}

		if r.IsLayout() {
			if _, ok := t.entries[full]; ok {
				return fmt.Errorf("%w: %s", ErrDuplicatePath, full)
			}

			inner := append(slices.Clone(layouts), r.View)
			if err := t.flatten(r.Children, full, inner); err != nil {
				return err
			}

			// a child sharing the layout's path renders inside it
			if _, claimed := t.entries[full]; claimed {
				if err := t.claimName(r.Name, full); err != nil {
					return err
				}

				continue
			}
		}

		if err := t.add(full, r, layouts); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) add(path string, r Route, layouts []View) error {
	if _, ok := t.entries[path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, path)
	}

	if err := t.claimName(r.Name, path); err != nil {
		return err
	}

	e := entry{
		match: Match{
			Name:    r.Name,
			Path:    path,
			View:    r.View,
			Meta:    r.Meta.clone(),
			Layouts: slices.Clone(layouts),
		},
	}

	if r.IsRedirect() {
		e.match = Match{}
		e.redirect = t.normalize(joinPath(parentOf(path), r.Redirect))
	}

	t.entries[path] = e
	t.order = append(t.order, path)

	return nil
}

func (t *Table) claimName(name, path string) error {
	if name == "" {
		return nil
	}

	if prev, ok := t.names[name]; ok {
		return fmt.Errorf("%w: %q names both %s and %s", ErrDuplicateName, name, prev, path)
	}

	t.names[name] = path
	return nil
}

// followRedirects resolves every redirect chain to its end,
// failing on cycles and dangling targets.
func (t *Table) followRedirects() error {
	for _, path := range t.order {
		e := t.entries[path]
		if e.redirect == "" {
			continue
		}

		seen := map[string]bool{path: true}
		next := e.redirect
		for {
			if seen[next] {
				return fmt.Errorf("%w: %s leads back to %s", ErrRedirectCycle, path, next)
			}
			seen[next] = true

			hop, ok := t.entries[next]
			if !ok {
				return fmt.Errorf("%w: %s redirects to %s", ErrRedirectTarget, path, next)
			}

			if hop.redirect == "" {
				break
			}

			next = hop.redirect
		}

		e.target = next
		t.entries[path] = e
	}

	return nil
}

// Resolve matches path against the Table.
// Resolve never fails; an unknown path yields a NotFound Resolution.
func (t *Table) Resolve(path string) Resolution {
	path = t.normalize(path)

	e, ok := t.entries[path]
	if !ok {
		return Resolution{Kind: NotFound, Path: path}
	}

	if e.redirect == "" {
		return Resolution{Kind: Matched, Path: path, Match: e.match.clone()}
	}

	return Resolution{
		Kind:   Redirected,
		Path:   path,
		Target: e.target,
		Match:  t.entries[e.target].match.clone(),
	}
}

// Default resolves Root.
func (t *Table) Default() Resolution { return t.Resolve(Root) }

// Named finds the route registered under name.
func (t *Table) Named(name string) (Resolution, bool) {
	path, ok := t.names[name]
	if !ok {
		return Resolution{}, false
	}

	return t.Resolve(path), true
}

// Paths lists every path the Table resolves, in configuration order.
func (t *Table) Paths() []string { return slices.Clone(t.order) }

// Routes returns a copy of the routes the Table was built from.
func (t *Table) Routes() []Route { return cloneRoutes(t.routes) }

// Strict asserts whether a trailing slash is significant.
func (t *Table) Strict() bool { return t.strict }

func (t *Table) normalize(path string) string {
	if path == "" {
		return Root
	}

	if !t.strict && len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return path
}

// parentOf returns the directory-like parent of path.
// Relative redirects resolve against it like relative URLs do.
func parentOf(path string) string {
	i := strings.LastIndex(path, "/")
	if i <= 0 {
		return Root
	}

	return path[:i]
}

func cloneRoutes(routes []Route) []Route {
	if routes == nil {
		return nil
	}

	out := make([]Route, len(routes))
	for i, r := range routes {
		r.Meta = r.Meta.clone()
		r.Children = cloneRoutes(r.Children)
		out[i] = r
	}

	return out
}
