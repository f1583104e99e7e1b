package render

import (
	"fmt"
	"strings"

	"github.com/Arjunram-pal/portfolio/internal/siteapi"
	"github.com/Arjunram-pal/portfolio/internal/ui"
)

const postsEmptyPlaceholder = `<div class="empty-state"><p>No posts yet.</p></div>`

type PostView struct {
	Posts     []siteapi.RoutinePost
	IsAdmin   bool
	Formatter TimeFormatter
	// OpenReplies marks the posts whose reply form is shown.
	OpenReplies ui.ReplyForms
}

// PostList renders routine posts and their replies, both in server order.
func PostList(view PostView) string {
	if len(view.Posts) == 0 {
		return postsEmptyPlaceholder
	}

	var sb strings.Builder
	for _, post := range view.Posts {
		writePostCard(&sb, post, view)
	}
	return sb.String()
}

func writePostCard(sb *strings.Builder, post siteapi.RoutinePost, view PostView) {
	sb.WriteString(`<div class="post-card">`)
	fmt.Fprintf(sb, `<div class="post-header"><div class="post-time">%s</div></div>`,
		Escape(view.Formatter.FormatTime(post.Timestamp)))
	fmt.Fprintf(sb, `<div class="post-message">%s</div>`, Escape(post.Message))

	if view.IsAdmin {
		fmt.Fprintf(sb,
			`<div class="post-actions"><button class="btn-reply" data-event="%s" data-post-id="%d">Reply</button></div>`,
			EventRoutineReplyToggle, post.ID,
		)
		fmt.Fprintf(sb, `<div class="%s" id="replyForm-%d">`,
			ui.ClassList("reply-form", ui.ClassShow, view.OpenReplies.IsOpen(post.ID)), post.ID)
		fmt.Fprintf(sb, `<textarea id="replyText-%d" name="message" rows="3" placeholder="Write a reply..."></textarea>`, post.ID)
		fmt.Fprintf(sb, `<button data-event="%s" data-post-id="%d">Post Reply</button>`, EventRoutineReplySubmit, post.ID)
		sb.WriteString(`</div>`)
	}

	if len(post.Replies) > 0 {
		sb.WriteString(`<ol class="replies-container">`)
		for _, reply := range post.Replies {
			sb.WriteString(`<li class="reply-item">`)
			fmt.Fprintf(sb, `<div class="reply-time">%s</div>`, Escape(view.Formatter.FormatTime(reply.Timestamp)))
			fmt.Fprintf(sb, `<div class="reply-text">%s</div>`, Escape(reply.Message))
			sb.WriteString(`</li>`)
		}
		sb.WriteString(`</ol>`)
	}

	sb.WriteString(`</div>`)
}
