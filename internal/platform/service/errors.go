package service

import "errors"

// ErrUnauthorized is the recoverable business-rule denial: the caller lacks
// the required role/tenant match. It is surfaced to the UI as a structured
// result and never retried automatically.
var ErrUnauthorized = errors.New("caller is not authorized for this tenant")
