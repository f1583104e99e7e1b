package render

import (
	"strings"
	"unicode/utf8"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape makes text safe to place in element content and quoted attributes.
// Entities already present in text are escaped again, so apply it once, on raw content.
func Escape(text string) string {
	return htmlReplacer.Replace(text)
}

// PreviewLimit is the number of characters of blog content shown in a card.
const PreviewLimit = 220

const ellipsis = "..."

// Preview truncates content to PreviewLimit characters, escapes it, and only
// then turns newlines into <br>.
func Preview(content string) string {
	if utf8.RuneCountInString(content) > PreviewLimit {
		content = string([]rune(content)[:PreviewLimit]) + ellipsis
	}
	return nl2br(Escape(content))
}

// Paragraphs is the full-text counterpart of Preview.
func Paragraphs(content string) string {
	return nl2br(Escape(content))
}

func nl2br(escaped string) string {
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
