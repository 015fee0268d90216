package calendar

import "errors"

// ErrInvalidMonth indicates a month reference that is not YYYY-MM.
var ErrInvalidMonth = errors.New("invalid month")
