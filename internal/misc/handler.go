package misc

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arjunram-pal/portfolio/internal/events"
	"github.com/Arjunram-pal/portfolio/internal/middleware"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/metrics"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/tracing"
	"github.com/Arjunram-pal/portfolio/internal/ui"
	"github.com/Arjunram-pal/portfolio/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type dispatcher interface {
	Dispatch(ctx context.Context, viewer events.Viewer, event events.Event) (events.Outcome, error)
}

type SidebarResponse struct {
	Active bool   `json:"active"`
	Class  string `json:"class"`
}

type ModalResponse struct {
	Close bool `json:"close"`
}

type Handler struct {
	dispatcher  dispatcher
	versionInfo string
}

func NewHandler(dispatcher dispatcher, versionInfo string) *Handler {
	return &Handler{
		dispatcher:  dispatcher,
		versionInfo: versionInfo,
	}
}

// SetupRoutes registers the misc routes. A contact message sent as a generic
// event counts against the same per-client limit as POST /contact.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	contactAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/ui/sidebar", handler.handleSidebar).Methods("GET").Name("ui-sidebar")
	mainRouter.HandleFunc("/ui/modal", handler.handleModal).Methods("POST").Name("ui-modal")

	contactEventRouter := mainRouter.PathPrefix(`/events/{name:contact\.submit}`).Subrouter()
	contactEventRouter.
		HandleFunc("", handler.handleEvent).
		Methods("POST").Name("event-contact")
	contactEventRouter.Use(middleware.RateLimit(
		rateLimiter,
		middleware.ContactRateLimitKey,
		contactAllowedPerMin,
		metricsManager,
	))

	mainRouter.HandleFunc("/events/{name}", handler.handleEvent).Methods("POST").Name("event")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleSidebar answers the sidebar state after its toggle was pressed.
func (handler *Handler) handleSidebar(w http.ResponseWriter, r *http.Request) {
	active, _ := strconv.ParseBool(r.URL.Query().Get("active"))
	active = ui.Toggle(active)
	pkg.WriteJSONResponseOK(w, SidebarResponse{
		Active: active,
		Class:  ui.ClassList("sidebar", ui.ClassActive, active),
	})
}

func (handler *Handler) handleModal(w http.ResponseWriter, r *http.Request) {
	var ev ui.ModalEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		log.Errorf("modal event, unmarshal json params: %s", err)
		http.Error(w, "bad modal event", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponseOK(w, ModalResponse{Close: ui.ModalShouldClose(ev)})
}

// handleEvent dispatches a control's data-event by name, with its data-*
// attributes and form values as the body.
func (handler *Handler) handleEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "miscHandler.event")
	defer span.End()

	name := mux.Vars(r)["name"]
	span.SetAttributes(attribute.String("event.name", name))

	data, err := pkg.RequestData(r)
	if err != nil {
		log.Errorf("event %s: %s", name, err)
		http.Error(w, "bad event data", http.StatusBadRequest)
		return
	}

	event, err := events.Decode(name, data)
	if err != nil {
		log.Tracef("decode event %s: %s", name, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := handler.dispatcher.Dispatch(ctx, middleware.ViewerFrom(r.Context()), event)
	if err != nil {
		events.WriteHTTPError(w, "event "+name, err)
		return
	}
	pkg.WriteJSONResponseOK(w, out)
}
