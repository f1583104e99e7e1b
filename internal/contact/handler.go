package contact

import (
	"context"
	"net/http"

	"github.com/Arjunram-pal/portfolio/internal/events"
	"github.com/Arjunram-pal/portfolio/internal/middleware"
	"github.com/Arjunram-pal/portfolio/internal/siteapi"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/metrics"
	"github.com/Arjunram-pal/portfolio/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type dispatcher interface {
	Dispatch(ctx context.Context, viewer events.Viewer, event events.Event) (events.Outcome, error)
}

// ValidityResponse drives the submit control of the contact form.
type ValidityResponse struct {
	Valid         bool `json:"valid"`
	SubmitEnabled bool `json:"submitEnabled"`
}

type Handler struct {
	dispatcher dispatcher
}

func NewHandler(dispatcher dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/contact/validate", handler.handleValidate).Methods("POST").Name("contact-validate")

	// only sending is rate limited, validation runs on every keystroke
	sendRouter := mainRouter.PathPrefix("/contact").Subrouter()
	sendRouter.
		HandleFunc("", handler.handleSend).
		Methods("POST", "OPTIONS").Name("contact-send")
	sendRouter.Use(middleware.RateLimit(rateLimiter, middleware.ContactRateLimitKey, allowedPerMin, metricsManager))
}

func (handler *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	msg, ok := readMessage(w, r)
	if !ok {
		return
	}

	out, err := handler.dispatcher.Dispatch(
		r.Context(),
		middleware.ViewerFrom(r.Context()),
		events.SubmitContact{Message: msg},
	)
	if err != nil {
		events.WriteHTTPError(w, "send contact message", err)
		return
	}
	pkg.WriteJSONResponseOK(w, out)
}

func (handler *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	msg, ok := readMessage(w, r)
	if !ok {
		return
	}

	valid := events.ValidContact(msg)
	pkg.WriteJSONResponseOK(w, ValidityResponse{
		Valid:         valid,
		SubmitEnabled: valid,
	})
}

func readMessage(w http.ResponseWriter, r *http.Request) (siteapi.ContactMessage, bool) {
	data, err := pkg.RequestData(r)
	if err != nil {
		log.Errorf("contact form: %s", err)
		http.Error(w, "bad contact form", http.StatusBadRequest)
		return siteapi.ContactMessage{}, false
	}
	return siteapi.ContactMessage{
		Fullname: data["fullname"],
		Email:    data["email"],
		Message:  data["message"],
	}, true
}
