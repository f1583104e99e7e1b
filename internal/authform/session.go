package authform

import (
	"errors"
	"sync"
)

const (
	SubmitLabel = "Submit"
	BusyLabel   = "Please wait..."
)

var (
	ErrSubmitBlocked  = errors.New("form is not valid, submit blocked")
	ErrSubmitInFlight = errors.New("form already submitted")
)

// Session tracks one rendered form: it is valid or invalid after every
// input, and once a valid submit is accepted it stays busy for good.
type Session struct {
	kind Kind

	mu      sync.Mutex
	last    Result
	busy    bool
	onBlock func(kind Kind)
}

type SessionOption func(*Session)

// WithBlockedSubmitHook registers a callback for rejected submits.
func WithBlockedSubmitHook(hook func(kind Kind)) SessionOption {
	return func(s *Session) {
		s.onBlock = hook
	}
}

// NewSession validates the empty form once, so it starts in its natural state.
func NewSession(kind Kind, opts ...SessionOption) *Session {
	s := &Session{kind: kind}
	for _, opt := range opts {
		opt(s)
	}
	s.last = Validate(kind, Fields{})
	return s
}

func (s *Session) Kind() Kind {
	return s.kind
}

// Input recomputes the verdict after a field changed.
func (s *Session) Input(fields Fields) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = Validate(s.kind, fields)
	return s.last
}

func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Session) SubmitEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.busy && s.last.Valid
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SubmitLabel is the current text of the submit control.
func (s *Session) SubmitLabel() string {
	if s.Busy() {
		return BusyLabel
	}
	return SubmitLabel
}

// Submit revalidates and, when valid, moves the session to busy.
// An invalid form yields ErrSubmitBlocked, a busy one ErrSubmitInFlight.
func (s *Session) Submit(fields Fields) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return s.last, ErrSubmitInFlight
	}

	s.last = Validate(s.kind, fields)
	if !s.last.Valid {
		if s.onBlock != nil {
			s.onBlock(s.kind)
		}
		return s.last, ErrSubmitBlocked
	}

	s.busy = true
	return s.last, nil
}
