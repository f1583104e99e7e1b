package render

import (
	"github.com/Arjunram-pal/portfolio/internal/siteapi"
)

// ModalView is the full blog as shown in the reading modal, all fields html safe.
type ModalView struct {
	BlogID      int    `json:"blogId"`
	Title       string `json:"title"`
	Meta        string `json:"meta"`
	ContentHTML string `json:"contentHtml"`
}

func BlogModal(blog siteapi.Blog, formatter TimeFormatter) ModalView {
	meta := blog.Category + " • " + formatter.FormatDate(blog.Timestamp)
	return ModalView{
		BlogID:      blog.ID,
		Title:       Escape(blog.Title),
		Meta:        Escape(meta),
		ContentHTML: Paragraphs(blog.Content),
	}
}
