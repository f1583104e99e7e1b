package events

import (
	"net/mail"
	"strings"

	"github.com/Arjunram-pal/portfolio/internal/siteapi"
)

// ValidContact reports whether the contact form may be sent: every field filled
// in and a well formed email address.
func ValidContact(msg siteapi.ContactMessage) bool {
	if strings.TrimSpace(msg.Fullname) == "" || strings.TrimSpace(msg.Message) == "" {
		return false
	}
	return validEmail(msg.Email)
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// reject "Name <addr>" forms, the input holds a bare address
	if addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}
