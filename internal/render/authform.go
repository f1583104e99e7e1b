package render

import (
	"fmt"
	"strings"

	"github.com/Arjunram-pal/portfolio/internal/authform"
)

var fieldLabels = map[string]string{
	authform.FieldUsername:        "Username",
	authform.FieldNewUsername:     "New username",
	authform.FieldPassword:        "Password",
	authform.FieldCurrentPassword: "Current password",
	authform.FieldNewPassword:     "New password",
	authform.FieldConfirmPassword: "Confirm password",
}

// AuthFormView is an auth form as first rendered: empty, already validated once.
type AuthFormView struct {
	FormID        string
	Kind          authform.Kind
	Result        authform.Result
	SubmitEnabled bool
	SubmitLabel   string
}

func AuthForm(view AuthFormView) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<form class="auth-form" data-form-kind="%s" data-form-id="%s" novalidate>`,
		Escape(view.Kind.String()), Escape(view.FormID))
	for _, name := range authform.FieldNames(view.Kind) {
		writeAuthField(&sb, name, view.Result.Errors[name])
	}

	if view.Kind == authform.KindRegister || view.Kind == authform.KindChangePassword {
		fmt.Fprintf(&sb, `<p class="password-strength" data-strength="%s">%s</p>`,
			Escape(string(view.Result.Strength)), Escape(view.Result.Strength.Label()))
	}

	disabled := ""
	if !view.SubmitEnabled {
		disabled = " disabled"
	}
	fmt.Fprintf(&sb, `<button type="submit" class="form-btn"%s>%s</button>`, disabled, Escape(view.SubmitLabel))
	sb.WriteString(`</form>`)
	return sb.String()
}

func writeAuthField(sb *strings.Builder, name, errMsg string) {
	inputType := "text"
	if name != authform.FieldUsername && name != authform.FieldNewUsername {
		inputType = authform.InputTypePassword
	}

	sb.WriteString(`<div class="form-field">`)
	fmt.Fprintf(sb, `<label for="%s">%s</label>`, name, fieldLabels[name])
	fmt.Fprintf(sb, `<input type="%s" id="%s" name="%s" autocomplete="off">`, inputType, name, name)
	if inputType == authform.InputTypePassword {
		toggle := authform.TogglePassword(authform.InputTypeText)
		fmt.Fprintf(sb,
			`<button type="button" class="password-toggle" data-event="%s" data-field="%s" aria-label="%s">%s</button>`,
			EventPasswordToggle, name, toggle.AriaLabel, toggle.Label,
		)
	}
	fmt.Fprintf(sb, `<small class="field-error" data-field="%s">%s</small>`, name, Escape(errMsg))
	sb.WriteString(`</div>`)
}
