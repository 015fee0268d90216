package app

import "errors"

// ErrInvalidInput is returned for malformed query arguments.
var ErrInvalidInput = errors.New("invalid input")
