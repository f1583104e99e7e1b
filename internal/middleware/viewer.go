package middleware

import (
	"context"
	"net/http"

	"github.com/Arjunram-pal/portfolio/internal/events"
	"github.com/Arjunram-pal/portfolio/internal/siteapi"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=viewer_mocks_test.go -package=middleware_test

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

type viewerKey struct{}

// ViewerFrom returns the viewer resolved for the request, a visitor if none was.
func ViewerFrom(ctx context.Context) events.Viewer {
	viewer, _ := ctx.Value(viewerKey{}).(events.Viewer)
	return viewer
}

func WithViewer(ctx context.Context, viewer events.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

// ResolveViewer reads the admin session cookie and puts the viewer in the
// request context. A failed check degrades to a visitor, it never rejects.
// The request cookies are attached too, so site api calls go out with them.
func ResolveViewer(checker loginChecker, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.StartSpan(r.Context(), "middleware.viewer")

			viewer := events.Viewer{}
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				isLogged, err := checker.IsLogged(ctx, cookie.Value)
				if err != nil {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				}
				viewer.IsAdmin = err == nil && isLogged
				if viewer.IsAdmin {
					viewer.SessionID = cookie.Value
				}
			}

			span.SetAttributes(attribute.Bool("viewer.admin", viewer.IsAdmin))
			span.End()

			ctx = WithViewer(r.Context(), viewer)
			ctx = siteapi.WithCookies(ctx, r.Cookies())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
