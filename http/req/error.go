package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xy-planning-network/mediaspa"
)

var (
	ErrBadAny         = errors.New("bad argument")
	ErrBadFormat      = fmt.Errorf("%w: bad format", mediaspa.ErrNotValid)
	ErrNotImplemented = errors.New("not implemented")
	ErrUnexpected     = errors.New("unexpected")
)

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got)))
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}
	errs.E = v

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return mediaspa.ErrNotValid }
