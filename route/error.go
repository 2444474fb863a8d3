package route

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/mediaspa"
)

var (
	ErrDuplicateName  = fmt.Errorf("%w: duplicate route name", mediaspa.ErrBadConfig)
	ErrDuplicatePath  = fmt.Errorf("%w: duplicate route path", mediaspa.ErrBadConfig)
	ErrInvalidRoute   = fmt.Errorf("%w: invalid route", mediaspa.ErrBadConfig)
	ErrNoDefault      = fmt.Errorf("%w: root path does not resolve", mediaspa.ErrBadConfig)
	ErrNoView         = fmt.Errorf("%w: route has no view", mediaspa.ErrBadConfig)
	ErrRedirectCycle  = fmt.Errorf("%w: redirect cycle", mediaspa.ErrBadConfig)
	ErrRedirectTarget = fmt.Errorf("%w: redirect target does not exist", mediaspa.ErrBadConfig)

	ErrViewNotExist = fmt.Errorf("%w: view", mediaspa.ErrNotExist)
	ErrNoLoader     = errors.New("no view loader")
)
