//go:generate templ generate

package render

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
)

const defaultPageLang = "en"

// BlogListComponent renders lazily, when the component is served.
func BlogListComponent(view BlogView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, BlogList(view))
		return err
	})
}

func PostListComponent(view PostView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, PostList(view))
		return err
	})
}

func AuthFormComponent(view AuthFormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, AuthForm(view))
		return err
	})
}

// IsNavigation reports whether the browser loads r as a whole document,
// as opposed to the page script fetching a fragment.
func IsNavigation(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Sec-Fetch-Dest"), "document")
}

// PageLang is the document language for the formatter's locale, "en" when it has none.
func PageLang(formatter TimeFormatter) string {
	localized, ok := formatter.(interface{ Locale() language.Tag })
	if !ok || localized.Locale() == language.Und {
		return defaultPageLang
	}
	return localized.Locale().String()
}

// Serve writes the fragment as is, or inside Page when the browser
// navigated to the fragment route directly.
func Serve(w http.ResponseWriter, r *http.Request, title, lang string, fragment templ.Component) {
	if !IsNavigation(r) {
		templ.Handler(fragment).ServeHTTP(w, r)
		return
	}
	if lang == "" {
		lang = defaultPageLang
	}
	ctx := templ.WithChildren(r.Context(), fragment)
	templ.Handler(Page(title, lang)).ServeHTTP(w, r.WithContext(ctx))
}
