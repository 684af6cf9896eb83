package color

import "errors"

var (
	ErrInvalidHex = errors.New("invalid hex color, expected #RRGGBB")
)
