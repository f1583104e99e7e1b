package authform

import (
	"errors"
	"fmt"
)

// Kind selects the rule set a form is validated with.
type Kind int

const (
	KindLogin Kind = iota + 1
	KindRegister
	KindChangePassword
)

const (
	FieldUsername        = "username"
	FieldNewUsername     = "new_username"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldConfirmPassword = "confirm_password"
)

var ErrUnknownKind = errors.New("unknown form kind")

var kindNames = map[Kind]string{
	KindLogin:          "login",
	KindRegister:       "register",
	KindChangePassword: "change-password",
}

var kindTitles = map[Kind]string{
	KindLogin:          "Log in",
	KindRegister:       "Register",
	KindChangePassword: "Change password",
}

// Title is the heading of the page holding a form of this kind.
func (k Kind) Title() string {
	return kindTitles[k]
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKind, name)
}

// FieldNames lists the fields of a form kind, in display order.
func FieldNames(kind Kind) []string {
	switch kind {
	case KindLogin:
		return []string{FieldUsername, FieldPassword}
	case KindRegister:
		return []string{FieldUsername, FieldNewPassword, FieldConfirmPassword}
	case KindChangePassword:
		return []string{FieldNewUsername, FieldCurrentPassword, FieldNewPassword, FieldConfirmPassword}
	default:
		return nil
	}
}

// Fields holds the raw values of a form. Username doubles as new_username and
// Password as current_password, the kind decides which name applies.
type Fields struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// FieldsFromValues reads the field values of kind from a name -> value lookup,
// e.g. url.Values.Get.
func FieldsFromValues(kind Kind, get func(name string) string) Fields {
	f := Fields{
		NewPassword:     get(FieldNewPassword),
		ConfirmPassword: get(FieldConfirmPassword),
	}
	if kind == KindChangePassword {
		f.Username = get(FieldNewUsername)
		f.Password = get(FieldCurrentPassword)
	} else {
		f.Username = get(FieldUsername)
		f.Password = get(FieldPassword)
	}
	return f
}
