package route

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"strings"
)

//go:generate mockgen -destination=mock_route/mock_loader.go -package=mock_route . ViewLoader

// A Unit is a loaded, renderable view.
type Unit struct {
	View        View   `json:"view"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"-"`
}

// A ViewLoader turns a View reference into a Unit.
type ViewLoader interface {
	Load(ctx context.Context, view View) (Unit, error)
}

// LoadMatch loads the layouts around m, outermost first, followed by m's own view.
func LoadMatch(ctx context.Context, l ViewLoader, m Match) ([]Unit, error) {
	if l == nil {
		return nil, ErrNoLoader
	}

	views := append(append(make([]View, 0, len(m.Layouts)+1), m.Layouts...), m.View)
	units := make([]Unit, 0, len(views))
	for _, v := range views {
		u, err := l.Load(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("loading %s for %s: %w", v, m.Path, err)
		}

		units = append(units, u)
	}

	return units, nil
}

// FSLoader loads the chunks a bundler emitted for each View from a filesystem.
//
// For the View "views/video/index" under dir "assets", FSLoader tries
// "assets/views/video/index.js" then the first of "assets/views/video/index-*.js".
type FSLoader struct {
	fsys fs.FS
	dir  string
}

// NewFSLoader constructs an FSLoader reading chunks from dir within fsys.
func NewFSLoader(fsys fs.FS, dir string) *FSLoader {
	if dir == "" {
		dir = "."
	}

	return &FSLoader{fsys: fsys, dir: dir}
}

// Load implements ViewLoader.
func (l *FSLoader) Load(ctx context.Context, view View) (Unit, error) {
	if err := ctx.Err(); err != nil {
		return Unit{}, err
	}

	name := strings.TrimPrefix(path.Clean("/"+view.String()), "/")
	if view == "" || name == "" {
		return Unit{}, fmt.Errorf("%w: empty view", ErrViewNotExist)
	}

	fp, err := l.find(name)
	if err != nil {
		return Unit{}, err
	}

	body, err := fs.ReadFile(l.fsys, fp)
	if err != nil {
		return Unit{}, fmt.Errorf("%w: %s: %s", ErrViewNotExist, view, err)
	}

	return Unit{
		View:        view,
		Path:        fp,
		ContentType: mime.TypeByExtension(path.Ext(fp)),
		Body:        body,
	}, nil
}

func (l *FSLoader) find(name string) (string, error) {
	exact := path.Join(l.dir, name+".js")
	_, err := fs.Stat(l.fsys, exact)
	if err == nil {
		return exact, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s: %s", ErrViewNotExist, name, err)
	}

	matches, err := fs.Glob(l.fsys, path.Join(l.dir, name+"-*.js"))
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrViewNotExist, name)
	}

	return matches[0], nil
}
