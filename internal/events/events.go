package events

import (
	"errors"

	"github.com/Arjunram-pal/portfolio/internal/render"
	"github.com/Arjunram-pal/portfolio/internal/siteapi"
)

var (
	ErrAdminRequired  = errors.New("admin required")
	ErrRecordNotFound = errors.New("record not found")
	ErrInFlight       = errors.New("request already in flight")
	ErrUnknownEvent   = errors.New("unknown event")
	// ErrNeverLoaded is returned by handlers when a list load failed and no
	// earlier list exists to show instead.
	ErrNeverLoaded = errors.New("list never loaded")
)

// Event is one user interaction the dispatcher knows how to handle.
type Event interface {
	// Name is the dispatch name, as carried by data-event in the markup.
	Name() string
	adminOnly() bool
}

type LoadBlogs struct{}

type LoadPosts struct{}

type SubmitContact struct {
	Message siteapi.ContactMessage
}

// SaveBlog creates a blog when ID is nil and updates it otherwise.
type SaveBlog struct {
	ID       *int
	Title    string
	Category string
	Content  string
}

type EditBlog struct {
	ID int
}

type DeleteBlog struct {
	ID        int
	Confirmed bool
}

type OpenBlog struct {
	ID int
}

type CreatePost struct {
	Message string
}

type SubmitReply struct {
	PostID  int
	Message string
}

func (LoadBlogs) Name() string     { return "blog.load" }
func (LoadPosts) Name() string     { return "routine.load" }
func (SubmitContact) Name() string { return "contact.submit" }
func (SaveBlog) Name() string      { return "blog.save" }
func (EditBlog) Name() string      { return render.EventBlogEdit }
func (DeleteBlog) Name() string    { return render.EventBlogDelete }
func (OpenBlog) Name() string      { return render.EventBlogOpen }
func (CreatePost) Name() string    { return "routine.post" }
func (SubmitReply) Name() string   { return render.EventRoutineReplySubmit }

func (LoadBlogs) adminOnly() bool     { return false }
func (LoadPosts) adminOnly() bool     { return false }
func (SubmitContact) adminOnly() bool { return false }
func (SaveBlog) adminOnly() bool      { return true }
func (EditBlog) adminOnly() bool      { return true }
func (DeleteBlog) adminOnly() bool    { return true }
func (OpenBlog) adminOnly() bool      { return false }
func (CreatePost) adminOnly() bool    { return true }
func (SubmitReply) adminOnly() bool   { return true }

// Viewer is who the request is made for.
type Viewer struct {
	IsAdmin bool
	// SessionID is the admin session token, empty for visitors.
	SessionID string
}

const (
	LabelPublishBlog = "Publish Blog"
	LabelUpdateBlog  = "Update Blog"
)

// BlogEditor is the state of the admin blog form.
type BlogEditor struct {
	ID          *int   `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	ButtonLabel string `json:"buttonLabel"`
}

func NewBlogEditor() *BlogEditor {
	return &BlogEditor{ButtonLabel: LabelPublishBlog}
}

// Outcome tells the caller what to show after an event was handled.
type Outcome struct {
	Alert      string            `json:"alert,omitempty"`
	ResetForm  bool              `json:"resetForm,omitempty"`
	Reloaded   bool              `json:"reloaded,omitempty"`
	ClearInput bool              `json:"clearInput,omitempty"`
	Editor     *BlogEditor       `json:"editor,omitempty"`
	Modal      *render.ModalView `json:"modal,omitempty"`
}

const (
	AlertContactSent   = "Message sent successfully!"
	AlertContactFailed = "Failed to send message."
	alertContactError  = "Error: "
)
