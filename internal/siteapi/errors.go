package siteapi

import (
	"errors"
	"fmt"
)

var ErrEmptyBaseURL = errors.New("site api base url is empty")

// StatusError is returned when the site api answers with a non 2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// IsStatus reports whether err is a *StatusError carrying the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.Code == code
}
