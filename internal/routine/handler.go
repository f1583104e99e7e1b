package routine

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Arjunram-pal/portfolio/internal/events"
	"github.com/Arjunram-pal/portfolio/internal/middleware"
	"github.com/Arjunram-pal/portfolio/internal/render"
	"github.com/Arjunram-pal/portfolio/internal/state"
	"github.com/Arjunram-pal/portfolio/internal/ui"
	"github.com/Arjunram-pal/portfolio/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// OpenRepliesParam lists the posts whose reply form stays open across reloads.
const OpenRepliesParam = "open"

type dispatcher interface {
	Dispatch(ctx context.Context, viewer events.Viewer, event events.Event) (events.Outcome, error)
	Store() *state.Store
	Formatter() render.TimeFormatter
}

type ReplyToggleResponse struct {
	PostID    int    `json:"postId"`
	Open      bool   `json:"open"`
	OpenForms string `json:"openForms"`
	Class     string `json:"class"`
}

type Handler struct {
	dispatcher dispatcher
}

func NewHandler(dispatcher dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/routine/list", handler.handleList).Methods("GET").Name("routine-list")
	router.HandleFunc("/routine/post", handler.handleCreatePost).Methods("POST", "OPTIONS").Name("routine-post")
	router.HandleFunc("/routine/reply/{postId:[0-9]+}", handler.handleReply).Methods("POST", "OPTIONS").Name("routine-reply")
	router.HandleFunc("/routine/reply/{postId:[0-9]+}/toggle", handler.handleReplyToggle).Methods("POST").Name("routine-reply-toggle")
}

// handleList renders the posts after a reload, or the last fetched posts when
// it failed. Nothing is rendered before a first successful fetch.
func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFrom(r.Context())
	out, err := handler.dispatcher.Dispatch(r.Context(), viewer, events.LoadPosts{})
	if err != nil {
		events.WriteHTTPError(w, "load routine posts", err)
		return
	}

	snapshot := handler.dispatcher.Store().Snapshot()
	if !out.Reloaded && snapshot.PostsFetchedAt.IsZero() {
		events.WriteHTTPError(w, "load routine posts", fmt.Errorf("routine posts: %w", events.ErrNeverLoaded))
		return
	}

	view := render.PostView{
		Posts:       snapshot.Posts,
		IsAdmin:     viewer.IsAdmin,
		Formatter:   handler.dispatcher.Formatter(),
		OpenReplies: ui.ParseReplyForms(r.URL.Query().Get(OpenRepliesParam)),
	}
	render.Serve(w, r, "Routine", render.PageLang(view.Formatter), render.PostListComponent(view))
}

func (handler *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	data, err := pkg.RequestData(r)
	if err != nil {
		log.Errorf("create routine post: %s", err)
		http.Error(w, "create post failed", http.StatusBadRequest)
		return
	}

	out, err := handler.dispatcher.Dispatch(
		r.Context(),
		middleware.ViewerFrom(r.Context()),
		events.CreatePost{Message: data["message"]},
	)
	if err != nil {
		events.WriteHTTPError(w, "create routine post", err)
		return
	}
	pkg.WriteJSONResponseOK(w, out)
}

func (handler *Handler) handleReply(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		http.Error(w, "error, post id NaN", http.StatusBadRequest)
		return
	}

	data, err := pkg.RequestData(r)
	if err != nil {
		log.Errorf("reply to post %d: %s", postID, err)
		http.Error(w, "reply failed", http.StatusBadRequest)
		return
	}

	out, err := handler.dispatcher.Dispatch(
		r.Context(),
		middleware.ViewerFrom(r.Context()),
		events.SubmitReply{PostID: postID, Message: data["message"]},
	)
	if err != nil {
		events.WriteHTTPError(w, "reply to post", err)
		return
	}
	pkg.WriteJSONResponseOK(w, out)
}

// handleReplyToggle flips the reply form of one post; the set of open forms
// travels in the query, so the next list render keeps them open.
func (handler *Handler) handleReplyToggle(w http.ResponseWriter, r *http.Request) {
	if !middleware.ViewerFrom(r.Context()).IsAdmin {
		events.WriteHTTPError(w, "toggle reply form", events.ErrAdminRequired)
		return
	}

	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		http.Error(w, "error, post id NaN", http.StatusBadRequest)
		return
	}

	forms := ui.ParseReplyForms(r.URL.Query().Get(OpenRepliesParam))
	open := forms.Toggle(postID)
	pkg.WriteJSONResponseOK(w, ReplyToggleResponse{
		PostID:    postID,
		Open:      open,
		OpenForms: forms.String(),
		Class:     ui.ClassList("reply-form", ui.ClassShow, open),
	})
}
