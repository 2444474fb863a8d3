/*
Package templatetest exposes a mock fs.FS that implements basic file operations.
Used in unit tests for the purposes of avoiding the use of testdata/ directories
when unit testing template rendering and asset lookups.

Cribbed from Mark Bates: https://www.gopherguides.com/articles/golang-1.16-io-fs-improve-test-performance
*/
package templatetest

import (
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/xy-planning-network/mediaspa/http/template"
)

// NewParser constructs a template.Parser with the mocked files.
func NewParser(files ...FileMocker) template.Parser {
	return template.NewParser(template.WithFS(NewMockFS(files...)))
}

type FileMocker interface {
	fs.File
	fs.FileInfo
}

type MockFS []FileMocker

func NewMockFS(files ...FileMocker) fs.FS { return append(MockFS{}, files...) }

// Glob returns the names of all files matching pattern.
//
// Buyer beware: Glob is a simplistic implementation of fs.GlobFS
// and only ever reports files, never directories.
func (mfs MockFS) Glob(pattern string) ([]string, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, err
	}

	matches := []string{}
	for _, f := range mfs {
		if ok, _ := path.Match(pattern, f.Name()); ok {
			matches = append(matches, f.Name())
		}
	}

	return matches, nil
}

func (mfs MockFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	for _, f := range mfs {
		if f.Name() == name {
			if m, ok := f.(*MockFile); ok {
				// each Open reads from the start
				cp := *m
				return &cp, nil
			}
			return f, nil
		}
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

type MockFile struct {
	data    []byte
	modTime time.Time
	name    string
	off     int
}

func NewMockFile(name string, data []byte) FileMocker {
	return &MockFile{data: data, name: name, modTime: time.Now()}
}

func (m *MockFile) Close() error               { return nil }
func (m *MockFile) Name() string               { return m.name }
func (m *MockFile) IsDir() bool                { return false }
func (m *MockFile) Mode() fs.FileMode          { return 0o444 }
func (m *MockFile) ModTime() time.Time         { return m.modTime }
func (m *MockFile) Size() int64                { return int64(len(m.data)) }
func (m *MockFile) Stat() (fs.FileInfo, error) { return m, nil }
func (m *MockFile) Sys() any                   { return nil }
func (m *MockFile) Read(p []byte) (int, error) {
	if m.off >= len(m.data) {
		return 0, io.EOF
	}

	n := copy(p, m.data[m.off:])
	m.off += n
	return n, nil
}
