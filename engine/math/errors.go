package math

import "errors"

var (
	ErrSingularMatrix = errors.New("matrix is singular")
)
