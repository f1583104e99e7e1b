package render

import (
	"fmt"
	"strings"

	"github.com/Arjunram-pal/portfolio/internal/siteapi"
)

const blogsEmptyPlaceholder = `<p class="blog-empty">No blogs yet.</p>`

type BlogView struct {
	Blogs     []siteapi.Blog
	IsAdmin   bool
	Formatter TimeFormatter
}

// BlogList renders blog cards in the given order. Controls only carry the
// blog id, the handlers resolve everything else from the current snapshot.
func BlogList(view BlogView) string {
	if len(view.Blogs) == 0 {
		return blogsEmptyPlaceholder
	}

	var sb strings.Builder
	for i, blog := range view.Blogs {
		writeBlogCard(&sb, i+1, blog, view)
	}
	return sb.String()
}

func writeBlogCard(sb *strings.Builder, seq int, blog siteapi.Blog, view BlogView) {
	title := Escape(blog.Title)
	date := Escape(view.Formatter.FormatDate(blog.Timestamp))

	sb.WriteString(`<li class="blog-post-item">`)
	sb.WriteString(`<div class="blog-content blog-sequence-card">`)
	fmt.Fprintf(sb, `<span class="blog-seq-badge">#%d</span>`, seq)
	sb.WriteString(`<div class="blog-meta">`)
	fmt.Fprintf(sb, `<p class="blog-category">%s</p>`, Escape(blog.Category))
	sb.WriteString(`<span class="dot"></span>`)
	fmt.Fprintf(sb, `<time>%s</time>`, date)
	sb.WriteString(`</div>`)
	fmt.Fprintf(sb,
		`<h3 class="h3 blog-item-title"><button class="blog-open-btn" data-event="%s" data-blog-id="%d" aria-label="Open full blog %s">%s</button></h3>`,
		EventBlogOpen, blog.ID, title, title,
	)
	fmt.Fprintf(sb, `<p class="blog-text">%s</p>`, Preview(blog.Content))
	fmt.Fprintf(sb,
		`<button class="blog-read-btn" data-event="%s" data-blog-id="%d" aria-label="Read full blog %s">Read Full</button>`,
		EventBlogOpen, blog.ID, title,
	)

	if view.IsAdmin {
		sb.WriteString(`<div class="blog-admin-actions">`)
		fmt.Fprintf(sb,
			`<button class="form-btn" data-event="%s" data-blog-id="%d" aria-label="Edit blog %s">Edit</button>`,
			EventBlogEdit, blog.ID, title,
		)
		fmt.Fprintf(sb,
			`<button class="form-btn form-btn-danger" data-event="%s" data-blog-id="%d" aria-label="Delete blog %s">Delete</button>`,
			EventBlogDelete, blog.ID, title,
		)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div></li>`)
}
