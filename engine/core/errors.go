package core

import (
	"errors"
)

var (
	ErrUnknownConfigFormat = errors.New("unknown configuration format")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrWatcherClosed       = errors.New("config watcher already closed")
)
