package resp

import (
	"errors"

	"github.com/xy-planning-network/mediaspa"
)

var (
	ErrBadConfig   = mediaspa.ErrBadConfig
	ErrDone        = errors.New("request ctx done")
	ErrInvalid     = errors.New("invalid")
	ErrMissingData = errors.New("missing data")
	ErrNotFound    = errors.New("not found")
)
