package events

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// HTTPStatus maps a Dispatch error onto the status code handlers answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrAdminRequired):
		return http.StatusForbidden
	case errors.Is(err, ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidForm):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnknownEvent):
		return http.StatusBadRequest
	case errors.Is(err, ErrNeverLoaded):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTPError logs err, loudly only when it is not the caller's fault,
// and answers with the mapped status.
func WriteHTTPError(w http.ResponseWriter, op string, err error) {
	code := HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
	} else {
		log.Tracef("%s: %s", op, err)
	}
	http.Error(w, http.StatusText(code), code)
}
