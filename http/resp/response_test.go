package resp

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa/logger"
)

func newResponse() *Response {
	return &Response{r: httptest.NewRequest(http.MethodGet, "http://example.com", nil)}
}

func TestCode(t *testing.T) {
	// Arrange
	r := newResponse()

	// Act
	err := Code(http.StatusTeapot)(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusTeapot, r.code)
}

func TestData(t *testing.T) {
	// Arrange
	r := newResponse()
	data := map[string]any{"path": "/audio"}

	// Act
	err := Data(data)(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, data, r.data)
}

func TestEntry(t *testing.T) {
	// Arrange
	d := NewResponder(WithEntryTemplate("index.html"), WithLogger(logger.NewLogger(logger.WithLogger(log.New(io.Discard, "", 0)))))
	r := newResponse()
	r.tmpls = []string{"extra.html"}

	// Act
	err := Entry()(*d, r)
	again := Entry()(*d, r)

	// Assert
	require.Nil(t, err)
	require.Nil(t, again)
	require.Equal(t, []string{"index.html", "extra.html"}, r.tmpls)

	// Act
	err = Entry()(Responder{}, newResponse())

	// Assert
	require.ErrorIs(t, err, ErrBadConfig)
}

func TestErr(t *testing.T) {
	// Arrange
	d := NewResponder(WithLogger(logger.NewLogger(logger.WithLogger(log.New(io.Discard, "", 0)))))
	r := newResponse()
	e := errors.New("boom")

	// Act
	err := Err(e)(*d, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusInternalServerError, r.code)
	require.Equal(t, e, r.err)
}

func TestNotFound(t *testing.T) {
	// Arrange
	r := newResponse()

	// Act
	err := NotFound(ErrNotFound)(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusNotFound, r.code)
	require.ErrorIs(t, r.err, ErrNotFound)
}

func TestParam(t *testing.T) {
	// Arrange
	r := newResponse()

	// Act
	err := Param("a", "b")(Responder{}, r)

	// Assert
	require.ErrorIs(t, err, ErrMissingData)

	// Arrange
	require.Nil(t, Url("/app/?x=1")(Responder{}, r))

	// Act
	err = Param("a", "b")(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "/app/?a=b&x=1", r.url.String())
}

func TestQuery(t *testing.T) {
	// Arrange
	r := newResponse()
	vals := url.Values{"autoplay": {"1"}, "t": {"30", "60"}}

	// Act
	err := Query(vals)(Responder{}, r)

	// Assert
	require.ErrorIs(t, err, ErrMissingData)

	// Act
	err = Query(nil)(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Nil(t, r.url)

	// Arrange
	require.Nil(t, Url("/app/video?x=1")(Responder{}, r))

	// Act
	err = Query(vals)(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "/app/video?autoplay=1&t=30&t=60&x=1", r.url.String())
}

func TestTmpls(t *testing.T) {
	// Arrange
	r := newResponse()

	// Act
	require.Nil(t, Tmpls("a.html")(Responder{}, r))
	require.Nil(t, Tmpls("b.html", "c.html")(Responder{}, r))

	// Assert
	require.Equal(t, []string{"a.html", "b.html", "c.html"}, r.tmpls)
}

func TestToRoot(t *testing.T) {
	// Arrange
	r := newResponse()
	d := NewResponder(WithRootUrl("https://example.com/app/"))

	// Act
	err := ToRoot()(*d, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "https://example.com/app/", r.url.String())

	// Act
	err = ToRoot()(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "/", r.url.String())
}

func TestUrl(t *testing.T) {
	tcs := []struct {
		name string
		raw  string
		err  error
	}{
		{"Absolute", "https://example.com/app/", nil},
		{"Path", "/app/video", nil},
		{"Fragment", "/app/#/audio", nil},
		{"Relative", "video", ErrInvalid},
		{"Bad", "%zz", ErrInvalid},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := newResponse()

			// Act
			err := Url(tc.raw)(Responder{}, r)

			// Assert
			require.ErrorIs(t, err, tc.err)
			if tc.err == nil {
				require.Equal(t, tc.raw, r.url.String())
			}
		})
	}
}
