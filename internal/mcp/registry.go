package mcp

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"beacon/internal/logging"
)

// sessionHeader is the streamable-transport session identifier header.
const sessionHeader = "Mcp-Session-Id"

// SessionRegistry tracks live streaming sessions by their protocol-assigned
// identifier. The transport owns the session lifecycle; this is bookkeeping
// only — entries are added when the transport assigns an ID, refreshed on
// each request, and removed when the client closes the session.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	log      *slog.Logger
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]time.Time),
		log:      logging.New("sessions"),
	}
}

// Add records a newly assigned session.
func (r *SessionRegistry) Add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		r.log.Info("session opened", "session_id", id)
	}
	r.sessions[id] = time.Now()
}

// Touch refreshes the last-seen time for a session, registering it if the
// server restarted and lost the entry.
func (r *SessionRegistry) Touch(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = time.Now()
}

// Remove drops a closed session.
func (r *SessionRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; ok {
		delete(r.sessions, id)
		r.log.Info("session closed", "session_id", id)
	}
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Middleware observes the streamable HTTP exchange to keep the registry
// current. The transport assigns the session ID on the initialize response;
// the client ends a session with an HTTP DELETE carrying that ID.
func (r *SessionRegistry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodDelete {
			id := req.Header.Get(sessionHeader)
			next.ServeHTTP(w, req)
			if id != "" {
				r.Remove(id)
			}
			return
		}

		// A streaming GET holds ServeHTTP open for the life of the
		// stream; the carried session must already count as live while
		// the handler is running, not only after it returns.
		if id := req.Header.Get(sessionHeader); id != "" {
			r.Touch(id)
		}

		next.ServeHTTP(w, req)

		if id := w.Header().Get(sessionHeader); id != "" {
			r.Add(id)
		}
	})
}
