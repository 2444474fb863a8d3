package template_test

import (
	"bytes"
	html "html/template"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/template"
	tt "github.com/xy-planning-network/mediaspa/http/template/templatetest"
	"github.com/xy-planning-network/mediaspa/route"
)

type testFn func(*testing.T, *html.Template, error)

func TestParse(t *testing.T) {
	stub := []byte("<!DOCTYPE html>\n<html></html>")
	tcs := []struct {
		name   string
		parser template.Parser
		fns    map[string]any
		fps    []string
		assert testFn
	}{
		{
			name:   "Zero-Value",
			parser: tt.NewParser(),
			fps:    []string{},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.ErrorIs(t, err, template.ErrNoFiles)
				require.Nil(t, tmpl)
			},
		},
		{
			name:   "Empty-String",
			parser: tt.NewParser(tt.NewMockFile("example.tmpl", nil)),
			fps:    []string{""},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.ErrorIs(t, err, template.ErrNoFiles)
				require.Nil(t, tmpl)
			},
		},
		{
			name:   "No-File",
			parser: tt.NewParser(),
			fps:    []string{"example.tmpl"},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.NotNil(t, err)
				require.Nil(t, tmpl)
			},
		},
		{
			name:   "Empty-File",
			parser: tt.NewParser(tt.NewMockFile("example.tmpl", nil)),
			fps:    []string{"example.tmpl"},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.Nil(t, err)
				require.Equal(t, "example.tmpl", tmpl.Name())
			},
		},
		{
			name:   "Not-Empty-File",
			parser: tt.NewParser(tt.NewMockFile("example.tmpl", stub)),
			fps:    []string{"", "example.tmpl"},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.Nil(t, err)
				require.Equal(t, "example.tmpl", tmpl.Name())

				b := new(bytes.Buffer)
				require.Nil(t, tmpl.Execute(b, nil))
				require.Equal(t, stub, b.Bytes())
			},
		},
		{
			name: "Many-Files",
			parser: tt.NewParser(
				tt.NewMockFile(
					"example.tmpl",
					[]byte(`<!DOCTYPE html><html>{{ template "test" }}</html>`),
				),
				tt.NewMockFile(
					"test.tmpl",
					[]byte(`{{ define "test" }}<p>sup</p>{{ end }}`),
				),
			),
			fps: []string{"example.tmpl", "test.tmpl"},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.Nil(t, err)
				require.Equal(t, "example.tmpl", tmpl.Name())

				b := new(bytes.Buffer)
				require.Nil(t, tmpl.ExecuteTemplate(b, "example.tmpl", nil))
				require.Equal(t, "<!DOCTYPE html><html><p>sup</p></html>", b.String())
			},
		},
		{
			name: "Add-Fns",
			parser: tt.NewParser(
				tt.NewMockFile(
					"example.tmpl",
					[]byte(`<!DOCTYPE html><html>{{ test }} {{ second "cool" }}</html>`),
				),
			),
			fns: map[string]any{
				"test":   func() string { return "test" },
				"second": func(s string) string { return s },
			},
			fps: []string{"example.tmpl"},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.Nil(t, err)

				b := new(bytes.Buffer)
				require.Nil(t, tmpl.Execute(b, nil))
				require.Equal(t, "<!DOCTYPE html><html>test cool</html>", b.String())
			},
		},
		{
			name: "Built-Entry-Wins",
			parser: tt.NewParser(
				tt.NewMockFile(template.EntryPage, []byte(`<p>built</p>`)),
			),
			fps: []string{template.EntryPage},
			assert: func(t *testing.T, tmpl *html.Template, err error) {
				require.Nil(t, err)

				b := new(bytes.Buffer)
				require.Nil(t, tmpl.Execute(b, nil))
				require.Equal(t, "<p>built</p>", b.String())
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.fns {
				tc.parser.AddFn(k, v)
			}

			tmpl, err := tc.parser.Parse(tc.fps...)
			tc.assert(t, tmpl, err)
		})
	}
}

func TestNewEntryParser(t *testing.T) {
	// Arrange
	p := template.NewEntryParser(template.EntryConfig{
		App:     "mediaspa",
		Base:    "/app/",
		Env:     mediaspa.Production,
		Dist:    tt.NewMockFS(tt.NewMockFile("assets/index-1a2b3c.js", nil)),
		History: route.History,
	})

	data := struct {
		Title      string
		Resolution route.Resolution
	}{Title: "视频", Resolution: route.Resolution{Kind: route.Matched, Path: "/video"}}

	// Act
	tmpl, err := p.Parse(template.EntryPage)

	// Assert
	require.Nil(t, err)

	b := new(bytes.Buffer)
	require.Nil(t, tmpl.Execute(b, data))
	require.Contains(t, b.String(), "<title>视频 | mediaspa</title>")
	require.Contains(t, b.String(), `data-base="/app/"`)
	require.Contains(t, b.String(), `data-history="history"`)
	require.Contains(t, b.String(), `data-env="PRODUCTION"`)
	require.Contains(t, b.String(), `<script src="/app/assets/index-1a2b3c.js" type="module"></script>`)
	require.Contains(t, b.String(), `<link rel="stylesheet" href="/app/assets/index.css">`)
	require.Contains(t, b.String(), `"kind":"matched"`)
}
