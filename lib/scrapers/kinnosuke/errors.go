package kinnosuke

import (
	"errors"
	"fmt"
)

var InvalidCredentials = errors.New("Incorrect company id, login id or password.")
var UnauthorizedIp = errors.New("Time recorder is unavailable from this IP address.")
var CsrfTokenMissing = errors.New("CSRF token not found.")
var ClockActionFailed = errors.New("Failed to clock.")
var UnexpectedPageStructure = errors.New("Unexpected page structure.")

// StatusError is returned when the portal answers with a non-2xx status.
type StatusError struct {
	Method string
	Url    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Url, e.Code)
}
