package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Arjunram-pal/portfolio/internal/render"
	"github.com/Arjunram-pal/portfolio/internal/siteapi"
	"github.com/Arjunram-pal/portfolio/internal/state"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/metrics"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidForm = errors.New("form is not valid")

//go:generate mockgen -source=$GOFILE -destination=dispatcher_mocks_test.go -package=events_test

type siteAPI interface {
	SendContact(ctx context.Context, msg siteapi.ContactMessage) (siteapi.ContactResult, error)
	ListBlogs(ctx context.Context) ([]siteapi.Blog, error)
	CreateBlog(ctx context.Context, input siteapi.BlogInput) (*siteapi.Blog, error)
	UpdateBlog(ctx context.Context, id int, input siteapi.BlogInput) (*siteapi.Blog, error)
	DeleteBlog(ctx context.Context, id int) error
	ListPosts(ctx context.Context) ([]siteapi.RoutinePost, error)
	CreatePost(ctx context.Context, message string) (*siteapi.RoutinePost, error)
	Reply(ctx context.Context, postID int, message string) (*siteapi.Reply, error)
}

// Dispatcher maps typed ui events onto site api calls. Every mutation is
// followed by a full reload of the affected list, never by a local patch.
type Dispatcher struct {
	api            siteAPI
	store          *state.Store
	formatter      render.TimeFormatter
	metricsManager *metrics.Manager

	// blog editors with a save in flight, see editorKey
	savingMu    sync.Mutex
	savingBlogs map[string]bool
}

func NewDispatcher(
	api siteAPI,
	store *state.Store,
	formatter render.TimeFormatter,
	metricsManager *metrics.Manager,
) *Dispatcher {
	return &Dispatcher{
		api:            api,
		store:          store,
		formatter:      formatter,
		metricsManager: metricsManager,
		savingBlogs:    make(map[string]bool),
	}
}

func (d *Dispatcher) Store() *state.Store {
	return d.store
}

func (d *Dispatcher) Formatter() render.TimeFormatter {
	return d.formatter
}

// Dispatch handles a single event for viewer. Failures of background loads and
// admin mutations are logged, not returned: the caller keeps showing the last snapshot.
func (d *Dispatcher) Dispatch(ctx context.Context, viewer Viewer, event Event) (out Outcome, err error) {
	if event == nil {
		return Outcome{}, ErrUnknownEvent
	}

	ctx, span := tracing.StartSpan(ctx, "dispatcher."+event.Name())
	span.SetAttributes(attribute.Bool("viewer.admin", viewer.IsAdmin))
	defer func() {
		tracing.EndSpan(span, err)
		d.countEvent(event.Name(), err)
	}()

	if event.adminOnly() && !viewer.IsAdmin {
		return Outcome{}, ErrAdminRequired
	}

	switch ev := event.(type) {
	case LoadBlogs:
		return Outcome{Reloaded: d.reloadBlogs(ctx)}, nil
	case LoadPosts:
		return Outcome{Reloaded: d.reloadPosts(ctx)}, nil
	case SubmitContact:
		return d.submitContact(ctx, ev)
	case SaveBlog:
		return d.saveBlog(ctx, viewer, ev)
	case EditBlog:
		return d.editBlog(ev)
	case DeleteBlog:
		return d.deleteBlog(ctx, ev)
	case OpenBlog:
		return d.openBlog(ev)
	case CreatePost:
		return d.createPost(ctx, ev)
	case SubmitReply:
		return d.submitReply(ctx, ev)
	default:
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownEvent, event.Name())
	}
}

func (d *Dispatcher) submitContact(ctx context.Context, ev SubmitContact) (Outcome, error) {
	if !ValidContact(ev.Message) {
		if d.metricsManager != nil {
			d.metricsManager.CounterBlockedSubmits.WithLabelValues("contact").Inc()
		}
		return Outcome{}, ErrInvalidForm
	}

	result, err := d.api.SendContact(ctx, ev.Message)
	if err != nil {
		log.Errorf("send contact message: %s", err)
		return d.alert(Outcome{Alert: AlertContactFailed}), nil
	}
	if !result.Succeeded() {
		log.Warnf("contact message not sent, status [%s]: %s", result.Status, result.Message)
		return d.alert(Outcome{Alert: alertContactError + result.Message}), nil
	}

	log.Debugf("contact message sent from %s", ev.Message.Email)
	return d.alert(Outcome{Alert: AlertContactSent, ResetForm: true}), nil
}

func (d *Dispatcher) saveBlog(ctx context.Context, viewer Viewer, ev SaveBlog) (Outcome, error) {
	key := editorKey(viewer, ev.ID)
	if !d.startSaving(key) {
		return Outcome{}, ErrInFlight
	}
	defer d.doneSaving(key)

	input := siteapi.BlogInput{
		Title:    ev.Title,
		Category: ev.Category,
		Content:  ev.Content,
	}

	var err error
	if ev.ID == nil {
		_, err = d.api.CreateBlog(ctx, input)
	} else {
		_, err = d.api.UpdateBlog(ctx, *ev.ID, input)
	}
	if err != nil {
		log.Errorf("save blog: %s", err)
		return Outcome{}, nil
	}

	return Outcome{
		ResetForm: true,
		Editor:    NewBlogEditor(),
		Reloaded:  d.reloadBlogs(ctx),
	}, nil
}

// editorKey identifies one blog editor: the admin session it belongs to and the
// blog it edits, or "new" for the publish form.
func editorKey(viewer Viewer, id *int) string {
	target := "new"
	if id != nil {
		target = strconv.Itoa(*id)
	}
	return viewer.SessionID + "||" + target
}

func (d *Dispatcher) startSaving(key string) bool {
	d.savingMu.Lock()
	defer d.savingMu.Unlock()
	if d.savingBlogs[key] {
		return false
	}
	d.savingBlogs[key] = true
	return true
}

func (d *Dispatcher) doneSaving(key string) {
	d.savingMu.Lock()
	defer d.savingMu.Unlock()
	delete(d.savingBlogs, key)
}

func (d *Dispatcher) editBlog(ev EditBlog) (Outcome, error) {
	blog, ok := d.store.Snapshot().BlogByID(ev.ID)
	if !ok {
		return Outcome{}, fmt.Errorf("blog %d: %w", ev.ID, ErrRecordNotFound)
	}

	id := blog.ID
	return Outcome{
		Editor: &BlogEditor{
			ID:          &id,
			Title:       blog.Title,
			Category:    blog.Category,
			Content:     blog.Content,
			ButtonLabel: LabelUpdateBlog,
		},
	}, nil
}

func (d *Dispatcher) deleteBlog(ctx context.Context, ev DeleteBlog) (Outcome, error) {
	if !ev.Confirmed {
		return Outcome{}, nil
	}

	if err := d.api.DeleteBlog(ctx, ev.ID); err != nil {
		log.Errorf("delete blog %d: %s", ev.ID, err)
		return Outcome{}, nil
	}

	return Outcome{Reloaded: d.reloadBlogs(ctx)}, nil
}

func (d *Dispatcher) openBlog(ev OpenBlog) (Outcome, error) {
	blog, ok := d.store.Snapshot().BlogByID(ev.ID)
	if !ok {
		return Outcome{}, fmt.Errorf("blog %d: %w", ev.ID, ErrRecordNotFound)
	}

	modal := render.BlogModal(blog, d.formatter)
	return Outcome{Modal: &modal}, nil
}

func (d *Dispatcher) createPost(ctx context.Context, ev CreatePost) (Outcome, error) {
	message := strings.TrimSpace(ev.Message)
	if message == "" {
		return Outcome{}, nil
	}

	if _, err := d.api.CreatePost(ctx, message); err != nil {
		log.Errorf("create routine post: %s", err)
	}

	// the list is reloaded whatever the create outcome was
	return Outcome{
		ClearInput: true,
		Reloaded:   d.reloadPosts(ctx),
	}, nil
}

func (d *Dispatcher) submitReply(ctx context.Context, ev SubmitReply) (Outcome, error) {
	message := strings.TrimSpace(ev.Message)
	if message == "" {
		return Outcome{}, nil
	}

	if _, err := d.api.Reply(ctx, ev.PostID, message); err != nil {
		log.Errorf("reply to post %d: %s", ev.PostID, err)
		return Outcome{}, nil
	}

	return Outcome{
		ClearInput: true,
		Reloaded:   d.reloadPosts(ctx),
	}, nil
}

func (d *Dispatcher) reloadBlogs(ctx context.Context) bool {
	blogs, err := d.api.ListBlogs(ctx)
	if err != nil {
		log.Errorf("load blogs: %s", err)
		return false
	}
	d.store.ReplaceBlogs(blogs)
	return true
}

func (d *Dispatcher) reloadPosts(ctx context.Context) bool {
	posts, err := d.api.ListPosts(ctx)
	if err != nil {
		log.Errorf("load routine posts: %s", err)
		return false
	}
	d.store.ReplacePosts(posts)
	return true
}

func (d *Dispatcher) alert(out Outcome) Outcome {
	if d.metricsManager != nil && out.Alert != "" {
		d.metricsManager.CounterUserAlerts.Inc()
	}
	return out
}

func (d *Dispatcher) countEvent(name string, err error) {
	if d.metricsManager == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, ErrAdminRequired):
		outcome = "forbidden"
	case errors.Is(err, ErrInFlight):
		outcome = "in_flight"
	case err != nil:
		outcome = "error"
	}
	d.metricsManager.CounterEvents.WithLabelValues(name, outcome).Inc()
}
