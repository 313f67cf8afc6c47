package mcp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mcpserver "beacon/internal/mcp"
)

// fakeTransport stands in for the streamable handler: it assigns a session
// ID on initialize (no session header on the request) and echoes it back
// otherwise.
func fakeTransport(assign string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Header.Get("Mcp-Session-Id") == "" {
			w.Header().Set("Mcp-Session-Id", assign)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionRegistry_Lifecycle(t *testing.T) {
	reg := mcpserver.NewSessionRegistry()
	h := reg.Middleware(fakeTransport("sess-1"))

	// Initialize: the transport assigns the session ID on the response.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))
	if reg.Len() != 1 {
		t.Fatalf("after initialize: Len() = %d, want 1", reg.Len())
	}

	// Follow-up request carries the ID; the registry just refreshes it.
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Mcp-Session-Id", "sess-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if reg.Len() != 1 {
		t.Fatalf("after follow-up: Len() = %d, want 1", reg.Len())
	}

	// DELETE closes the session and removes the entry.
	del := httptest.NewRequest(http.MethodDelete, "/mcp", nil)
	del.Header.Set("Mcp-Session-Id", "sess-1")
	h.ServeHTTP(httptest.NewRecorder(), del)
	if reg.Len() != 0 {
		t.Fatalf("after close: Len() = %d, want 0", reg.Len())
	}
}

func TestSessionRegistry_UnknownDeleteIsHarmless(t *testing.T) {
	reg := mcpserver.NewSessionRegistry()
	h := reg.Middleware(fakeTransport("sess-1"))

	del := httptest.NewRequest(http.MethodDelete, "/mcp", nil)
	del.Header.Set("Mcp-Session-Id", "never-seen")
	h.ServeHTTP(httptest.NewRecorder(), del)
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
}

// A streaming request holds the handler open for the life of the stream;
// the registry must count the session while the handler is still running,
// or /healthz underreports until the stream ends.
func TestSessionRegistry_CountsSessionDuringStream(t *testing.T) {
	reg := mcpserver.NewSessionRegistry()
	var during int
	h := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = reg.Len()
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	req.Header.Set("Mcp-Session-Id", "sess-stream")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if during != 1 {
		t.Fatalf("Len() during stream = %d, want 1", during)
	}
}

func TestSessionRegistry_TouchRegistersLostSession(t *testing.T) {
	reg := mcpserver.NewSessionRegistry()
	h := reg.Middleware(fakeTransport("sess-1"))

	// A request carrying an ID the registry has never seen (server restart)
	// re-registers it rather than being dropped.
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Mcp-Session-Id", "sess-old")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
}
