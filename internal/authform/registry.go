package authform

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSessionTTL  = 2 * time.Hour
	DefaultMaxSessions = 10000
)

type registryEntry struct {
	session  *Session
	openedAt time.Time
}

// Registry keeps the sessions of forms rendered to browsers, keyed by form id.
// It holds at most maxSessions, opening one more evicts the oldest.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]registryEntry
	order       []string // ids by open time, oldest first
	maxSessions int
	opts        []SessionOption
	now         func() time.Time
}

// NewRegistry creates a registry bounded to maxSessions, DefaultMaxSessions when not positive.
func NewRegistry(maxSessions int, opts ...SessionOption) *Registry {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Registry{
		sessions:    make(map[string]registryEntry),
		maxSessions: maxSessions,
		opts:        opts,
		now:         time.Now,
	}
}

// Open starts a session for a freshly rendered form.
func (r *Registry) Open(kind Kind) (string, *Session) {
	id := uuid.NewString()
	session := NewSession(kind, r.opts...)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for len(r.sessions) >= r.maxSessions && len(r.order) > 0 {
		oldest := r.order[0]
		r.order[0] = ""
		r.order = r.order[1:]
		delete(r.sessions, oldest)
		evicted++
	}
	if evicted > 0 {
		log.Tracef("form sessions at capacity %d: evicted %d", r.maxSessions, evicted)
	}

	r.sessions[id] = registryEntry{session: session, openedAt: r.now()}
	r.order = append(r.order, id)
	return id, session
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[id]
	return entry.session, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// ScanAndClean drops sessions older than maxAge, a page reload opens a new one anyway.
func (r *Registry) ScanAndClean(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	now := r.now()
	kept := make([]string, 0, len(r.order))
	for _, id := range r.order {
		entry, ok := r.sessions[id]
		if !ok {
			continue
		}
		if now.Sub(entry.openedAt) > maxAge {
			delete(r.sessions, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	if removed > 0 {
		log.Debugf("form sessions cleanup: removed %d, left %d", removed, len(r.sessions))
	}
	return removed
}
