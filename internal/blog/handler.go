package blog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Arjunram-pal/portfolio/internal/events"
	"github.com/Arjunram-pal/portfolio/internal/middleware"
	"github.com/Arjunram-pal/portfolio/internal/render"
	"github.com/Arjunram-pal/portfolio/internal/state"
	"github.com/Arjunram-pal/portfolio/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// ConfirmedHeader carries the answer of the delete confirmation dialog.
const ConfirmedHeader = "X-Confirmed"

type dispatcher interface {
	Dispatch(ctx context.Context, viewer events.Viewer, event events.Event) (events.Outcome, error)
	Store() *state.Store
	Formatter() render.TimeFormatter
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
	router.HandleFunc("/blog/list", handler.handleList).Methods("GET").Name("blog-list")
	router.HandleFunc("/blog/save", handler.handleSave).Methods("POST", "OPTIONS").Name("blog-save")
	router.HandleFunc("/blog/{id:[0-9]+}/modal", handler.handleModal).Methods("GET").Name("blog-modal")
	router.HandleFunc("/blog/{id:[0-9]+}/edit", handler.handleEdit).Methods("GET").Name("blog-edit")
	router.HandleFunc("/blog/{id:[0-9]+}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("blog-delete")
}

// handleList reloads the blogs and renders the list from the current snapshot,
// which is the previous one if the reload failed. With no list fetched yet a
// failed reload answers 502, the page keeps what it shows.
func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFrom(r.Context())
	out, err := handler.dispatcher.Dispatch(r.Context(), viewer, events.LoadBlogs{})
	if err != nil {
		events.WriteHTTPError(w, "load blogs", err)
		return
	}

	snapshot := handler.dispatcher.Store().Snapshot()
	if !out.Reloaded && snapshot.BlogsFetchedAt.IsZero() {
		events.WriteHTTPError(w, "load blogs", fmt.Errorf("blogs: %w", events.ErrNeverLoaded))
		return
	}

	view := render.BlogView{
		Blogs:     snapshot.Blogs,
		IsAdmin:   viewer.IsAdmin,
		Formatter: handler.dispatcher.Formatter(),
	}
	render.Serve(w, r, "Blogs", render.PageLang(view.Formatter), render.BlogListComponent(view))
}

func (handler *Handler) handleModal(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	out, err := handler.dispatcher.Dispatch(r.Context(), middleware.ViewerFrom(r.Context()), events.OpenBlog{ID: id})
	if err != nil {
		events.WriteHTTPError(w, "open blog", err)
		return
	}
	pkg.WriteJSONResponseOK(w, out.Modal)
}

func (handler *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	out, err := handler.dispatcher.Dispatch(r.Context(), middleware.ViewerFrom(r.Context()), events.EditBlog{ID: id})
	if err != nil {
		events.WriteHTTPError(w, "edit blog", err)
		return
	}
	pkg.WriteJSONResponseOK(w, out.Editor)
}

func (handler *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	data, err := pkg.RequestData(r)
	if err != nil {
		log.Errorf("save blog: %s", err)
		http.Error(w, "save blog failed", http.StatusBadRequest)
		return
	}

	event, err := events.Decode(events.SaveBlog{}.Name(), data)
	if err != nil {
		log.Errorf("save blog, decode event: %s", err)
		http.Error(w, "error, blog id NaN", http.StatusBadRequest)
		return
	}

	out, err := handler.dispatcher.Dispatch(r.Context(), middleware.ViewerFrom(r.Context()), event)
	if err != nil {
		events.WriteHTTPError(w, "save blog", err)
		return
	}
	pkg.WriteJSONResponseOK(w, out)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id, ok := blogID(w, r)
	if !ok {
		return
	}

	confirmed, _ := strconv.ParseBool(r.Header.Get(ConfirmedHeader))
	if !confirmed {
		confirmed, _ = strconv.ParseBool(r.URL.Query().Get("confirmed"))
	}

	out, err := handler.dispatcher.Dispatch(
		r.Context(),
		middleware.ViewerFrom(r.Context()),
		events.DeleteBlog{ID: id, Confirmed: confirmed},
	)
	if err != nil {
		events.WriteHTTPError(w, "delete blog", err)
		return
	}
	pkg.WriteJSONResponseOK(w, out)
}

func blogID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
