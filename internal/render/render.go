// Package render turns api records into the html fragments the site swaps into the page.
// Every server supplied value passes through Escape exactly once.
package render

// TimeFormatter renders raw server timestamps.
type TimeFormatter interface {
	FormatDate(raw string) string
	FormatTime(raw string) string
}

// Dispatch event names carried by the rendered controls in data-event.
const (
	EventBlogOpen           = "blog.open"
	EventBlogEdit           = "blog.edit"
	EventBlogDelete         = "blog.delete"
	EventRoutineReplyToggle = "routine.reply.toggle"
	EventRoutineReplySubmit = "routine.reply.submit"
	EventPasswordToggle     = "auth.password.toggle"
)
