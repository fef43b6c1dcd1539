package gateway

import "errors"

var (
	ErrTransport = errors.New("cannot reach backend")
	ErrNoData    = errors.New("response carries no data")
)
