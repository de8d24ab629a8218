package domain

import "errors"

// ErrDuplicateConfirmed is returned by log stores that enforce slot uniqueness
// themselves when a second confirmation for the same slot is appended.
var ErrDuplicateConfirmed = errors.New("slot already has a confirmed booking")
