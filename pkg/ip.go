package pkg

import (
	"errors"
	"net"
	"net/http"
	"strings"
)

var ErrNoClientIP = errors.New("client ip not found")

// ClientIP returns the address of the visitor; headers set by the reverse proxy
// (nginx in front of the service) take precedence over the remote address.
func ClientIP(r *http.Request) (string, error) {
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-Ip")); realIP != "" {
		return hostOnly(realIP)
	}

	// X-Forwarded-For: client, proxy1, proxy2
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return hostOnly(strings.TrimSpace(first))
	}

	if r.RemoteAddr == "" {
		return "", ErrNoClientIP
	}
	return hostOnly(r.RemoteAddr)
}

func hostOnly(addr string) (string, error) {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if net.ParseIP(addr) == nil {
		return "", errors.New("ip addr " + addr + " is invalid")
	}
	return addr, nil
}
