package ir

import "errors"

var (
	ErrJSON        = errors.New("bad json value")
	ErrUnsupported = errors.New("unsupported go value")
)
