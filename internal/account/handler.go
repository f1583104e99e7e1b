package account

import (
	"errors"
	"net/http"

	"github.com/Arjunram-pal/portfolio/internal/authform"
	"github.com/Arjunram-pal/portfolio/internal/render"
	"github.com/Arjunram-pal/portfolio/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// FormIDField names the form id value sent along with the field values.
const FormIDField = "form_id"

// FormState is the verdict of a form after input or submit.
type FormState struct {
	Result        authform.Result `json:"result"`
	StrengthLabel string          `json:"strengthLabel"`
	SubmitEnabled bool            `json:"submitEnabled"`
	SubmitLabel   string          `json:"submitLabel"`
	Busy          bool            `json:"busy"`
}

// Handler serves the login, register and change password forms. It validates
// and gates submits only: credentials go to the site api from the browser.
type Handler struct {
	registry *authform.Registry
}

func NewHandler(registry *authform.Registry) *Handler {
	return &Handler{
		registry: registry,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/forms/password-toggle", handler.handlePasswordToggle).Methods("GET").Name("password-toggle")
	router.HandleFunc("/forms/{kind}", handler.handleForm).Methods("GET").Name("auth-form")
	router.HandleFunc("/forms/{kind}/validate", handler.handleValidate).Methods("POST").Name("auth-form-validate")
	router.HandleFunc("/forms/{kind}/submit", handler.handleSubmit).Methods("POST").Name("auth-form-submit")
}

func (handler *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	kind, ok := formKind(w, r)
	if !ok {
		return
	}

	formID, session := handler.registry.Open(kind)
	log.Tracef("opened %s form %s", kind, formID)

	view := render.AuthFormView{
		FormID:        formID,
		Kind:          kind,
		Result:        session.Result(),
		SubmitEnabled: session.SubmitEnabled(),
		SubmitLabel:   session.SubmitLabel(),
	}
	render.Serve(w, r, kind.Title(), "", render.AuthFormComponent(view))
}

// handleValidate runs on every input event. With a known form id the form
// session follows along, otherwise the verdict is computed standalone.
func (handler *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	kind, ok := formKind(w, r)
	if !ok {
		return
	}

	data, err := pkg.RequestData(r)
	if err != nil {
		log.Errorf("validate %s form: %s", kind, err)
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}
	fields := authform.FieldsFromValues(kind, valueGetter(data))

	session, found := handler.session(kind, data[FormIDField])
	if !found {
		result := authform.Validate(kind, fields)
		pkg.WriteJSONResponseOK(w, FormState{
			Result:        result,
			StrengthLabel: result.Strength.Label(),
			SubmitEnabled: result.Valid,
			SubmitLabel:   authform.SubmitLabel,
		})
		return
	}

	result := session.Input(fields)
	pkg.WriteJSONResponseOK(w, stateOf(session, result))
}

func (handler *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	kind, ok := formKind(w, r)
	if !ok {
		return
	}

	data, err := pkg.RequestData(r)
	if err != nil {
		log.Errorf("submit %s form: %s", kind, err)
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	session, found := handler.session(kind, data[FormIDField])
	if !found {
		http.Error(w, "unknown form, reload the page", http.StatusNotFound)
		return
	}

	result, err := session.Submit(authform.FieldsFromValues(kind, valueGetter(data)))
	switch {
	case errors.Is(err, authform.ErrSubmitBlocked):
		pkg.WriteJSON(w, stateOf(session, result), http.StatusUnprocessableEntity)
	case errors.Is(err, authform.ErrSubmitInFlight):
		pkg.WriteJSON(w, stateOf(session, result), http.StatusConflict)
	default:
		log.Tracef("%s form %s submitted", kind, data[FormIDField])
		pkg.WriteJSONResponseOK(w, stateOf(session, result))
	}
}

func (handler *Handler) handlePasswordToggle(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSONResponseOK(w, authform.TogglePassword(r.URL.Query().Get("type")))
}

func (handler *Handler) session(kind authform.Kind, formID string) (*authform.Session, bool) {
	if formID == "" {
		return nil, false
	}
	session, ok := handler.registry.Get(formID)
	if !ok || session.Kind() != kind {
		return nil, false
	}
	return session, true
}

func stateOf(session *authform.Session, result authform.Result) FormState {
	return FormState{
		Result:        result,
		StrengthLabel: result.Strength.Label(),
		SubmitEnabled: session.SubmitEnabled(),
		SubmitLabel:   session.SubmitLabel(),
		Busy:          session.Busy(),
	}
}

func formKind(w http.ResponseWriter, r *http.Request) (authform.Kind, bool) {
	kind, err := authform.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return 0, false
	}
	return kind, true
}

func valueGetter(data map[string]string) func(string) string {
	return func(name string) string {
		return data[name]
	}
}
