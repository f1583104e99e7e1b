package authform

import (
	"strings"
	"unicode/utf8"
)

const (
	minUsernameLen    = 3
	minNewPasswordLen = 6

	MsgUsernameTooShort    = "Username must be at least 3 characters."
	MsgPasswordRequired    = "Password is required."
	MsgNewPasswordTooShort = "New password must be at least 6 characters."
	MsgPasswordsMismatch   = "Passwords do not match."
)

// Result is the verdict of one validation pass. Errors has an entry for every
// field of the form kind, an empty message means the field is fine.
type Result struct {
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors"`
	Strength Strength          `json:"strength"`
}

// Validate checks fields against the rules of kind. It is pure.
func Validate(kind Kind, fields Fields) Result {
	names := FieldNames(kind)
	res := Result{
		Valid:  len(names) > 0,
		Errors: make(map[string]string, len(names)),
	}

	for _, name := range names {
		msg := fieldError(name, fields)
		res.Errors[name] = msg
		if msg != "" {
			res.Valid = false
		}
	}

	// only forms choosing a new password show a strength hint
	if kind == KindRegister || kind == KindChangePassword {
		res.Strength = ClassifyStrength(fields.NewPassword)
	}

	return res
}

func fieldError(name string, f Fields) string {
	switch name {
	case FieldUsername, FieldNewUsername:
		if utf8.RuneCountInString(strings.TrimSpace(f.Username)) < minUsernameLen {
			return MsgUsernameTooShort
		}
	case FieldPassword, FieldCurrentPassword:
		if f.Password == "" {
			return MsgPasswordRequired
		}
	case FieldNewPassword:
		if n := utf8.RuneCountInString(f.NewPassword); n > 0 && n < minNewPasswordLen {
			return MsgNewPasswordTooShort
		}
	case FieldConfirmPassword:
		// both empty means nothing was typed yet
		if f.ConfirmPassword != f.NewPassword {
			return MsgPasswordsMismatch
		}
	}
	return ""
}
