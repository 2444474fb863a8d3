package resp

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	r     *http.Request
	code  int
	data  any
	err   error
	tmpls []string
	url   *url.URL
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Html and Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Entry prepends all templates with the client application's entry page.
//
// If WithEntryTemplate was not called setting up the Responder, ErrBadConfig returns.
func Entry() Fn {
	return func(d Responder, r *Response) error {
		if d.templates.entry == "" {
			return fmt.Errorf("%w: no entry tmpl", ErrBadConfig)
		}

		if len(r.tmpls) > 0 && r.tmpls[0] == d.templates.entry {
			return nil
		}

		r.tmpls = append([]string{d.templates.entry}, r.tmpls...)
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
//
// Used with Responder.Json, the error's message is written under "error".
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		r.err = e
		return Code(http.StatusInternalServerError)(d, r)
	}
}

// NotFound sets the status code http.StatusNotFound and, unlike Err, does not log.
//
// Used with Responder.Json, the error's message is written under "error".
func NotFound(e error) Fn {
	return func(d Responder, r *Response) error {
		r.err = e
		return Code(http.StatusNotFound)(d, r)
	}
}

// Param adds the query parameter to the response's URL.
//
// Used with Responder.Redirect.
func Param(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: no url to add query params to", ErrMissingData)
		}

		q := r.url.Query()
		q.Add(key, val)
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// Query adds every value in vals to the response's URL.
//
// Used with Responder.Redirect.
func Query(vals url.Values) Fn {
	return func(_ Responder, r *Response) error {
		if len(vals) == 0 {
			return nil
		}

		if r.url == nil {
			return fmt.Errorf("%w: no url to add query params to", ErrMissingData)
		}

		q := r.url.Query()
		for key, vs := range vals {
			for _, v := range vs {
				q.Add(key, v)
			}
		}
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// Tmpls appends to the templates to be rendered.
//
// Used with Responder.Html.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}

// ToRoot calls URL with the Responder's default, root URL.
func ToRoot() Fn {
	return func(d Responder, r *Response) error {
		if d.rootUrl == nil {
			return Url("/")(d, r)
		}

		return Url(d.rootUrl.String())(d, r)
	}
}

// Url parses raw the URL string and sets it in the *Response if successful.
// The URL must be absolute or an absolute path; it may carry a fragment.
//
// Used with Responder.Redirect.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		good, err := url.Parse(u)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalid, err)
		}

		if !good.IsAbs() && !strings.HasPrefix(good.Path, "/") {
			return fmt.Errorf("%w: %q is not absolute", ErrInvalid, u)
		}

		r.url = good
		return nil
	}
}
