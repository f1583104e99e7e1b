package siteapi

import (
	"context"
	"net/http"
)

type cookiesKey struct{}

// WithCookies attaches the viewer's cookies to ctx, so the calls made with it
// are authorized by the site api the same way the browser request was.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	if len(cookies) == 0 {
		return ctx
	}
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

func cookiesFrom(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey{}).([]*http.Cookie)
	return cookies
}
