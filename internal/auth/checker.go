package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*StaticChecker)(nil)

// Checker tells whether an admin session token is still valid.
type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

// StaticChecker answers from a fixed token set.
type StaticChecker struct {
	LoggedSessions map[string]bool
}

func NewStaticChecker(tokens ...string) *StaticChecker {
	c := &StaticChecker{LoggedSessions: make(map[string]bool, len(tokens))}
	for _, t := range tokens {
		c.LoggedSessions[t] = true
	}
	return c
}

func (c *StaticChecker) IsLogged(_ context.Context, token string) (bool, error) {
	return c.LoggedSessions[token], nil
}
