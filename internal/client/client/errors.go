package client

import "errors"

var (
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrUnavailable     = errors.New("storage backend unavailable")
	ErrInvalidDatabase = errors.New("invalid database path")
)
