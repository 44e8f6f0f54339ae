// Package errors defines the sentinel errors shared across the service.
// Handlers map them to HTTP status codes at the boundary.
package errors

import (
	"fmt"
)

var (
	ErrNotFound          = fmt.Errorf("not found")
	ErrConflict          = fmt.Errorf("conflict")
	ErrForbidden         = fmt.Errorf("forbidden")
	ErrInvalidInput      = fmt.Errorf("invalid input")
	ErrNotOpen           = fmt.Errorf("role is not open for applications")
	ErrMessagingClosed   = fmt.Errorf("messaging is only available for applications in interview or accepted stage")
	ErrInvalidTransition = fmt.Errorf("invalid status transition")
)
