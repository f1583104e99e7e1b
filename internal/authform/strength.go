package authform

import (
	"unicode"
	"unicode/utf8"
)

// Strength is a display only classification, it never affects validity.
type Strength string

const (
	StrengthNone   Strength = ""
	StrengthWeak   Strength = "Weak"
	StrengthMedium Strength = "Medium"
	StrengthStrong Strength = "Strong"
)

const strongMinLen = 8

func ClassifyStrength(password string) Strength {
	if password == "" {
		return StrengthNone
	}
	if utf8.RuneCountInString(password) < strongMinLen {
		return StrengthWeak
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case !isASCIIAlnum(r):
			hasSymbol = true
		}
	}
	if hasUpper && hasDigit && hasSymbol {
		return StrengthStrong
	}
	return StrengthMedium
}

// Label is the text shown under the password field.
func (s Strength) Label() string {
	if s == StrengthNone {
		return ""
	}
	return "Password strength: " + string(s)
}

func isASCIIAlnum(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
