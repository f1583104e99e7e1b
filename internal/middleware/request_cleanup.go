package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes bounds how much of an unread body is consumed so the
// connection can be reused. Larger leftovers are just closed.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what the handler left of the request body and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}

			drained, err := io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
			if err != nil {
				log.Tracef("drain request body [%s]: %s", r.URL.Path, err)
			} else if drained > 0 {
				log.Tracef("drained %d unread body bytes [%s]", drained, r.URL.Path)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body [%s]: %s", r.URL.Path, err)
			}
		})
	}
}
