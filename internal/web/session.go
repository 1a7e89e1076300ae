package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/ecomeal/ecomeal/internal/panel"
)

const sessionCookie = "ecomeal_session"

// Session owns the state of the currently mounted panel for one browser
// session. Only one panel is mounted at a time; switching tabs replaces the
// state wholesale, so nothing survives a tab switch.
type Session struct {
	mu    sync.Mutex
	state *panel.State
}

// Panel returns the mounted panel state, mounting a fresh panel of the
// requested kind when none is mounted or the active kind differs.
func (s *Session) Panel(kind panel.Kind) *panel.State {
	if s.state == nil || s.state.Kind != kind {
		s.state = panel.NewState(kind)
	}
	return s.state
}

// Lock serializes handler access to the session. One in-flight submission per
// panel follows from this: a second request blocks until the first renders.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionStore keeps sessions in a TTL cache. Nothing is persisted; an idle
// session simply evaporates.
type SessionStore struct {
	sessions *cache.Cache
}

// NewSessionStore creates a store with a 30 minute sliding expiry.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: cache.New(30*time.Minute, 10*time.Minute),
	}
}

// Get returns the session for the request's cookie, creating the session and
// setting the cookie when absent.
func (st *SessionStore) Get(c *gin.Context) *Session {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if v, ok := st.sessions.Get(id); ok {
			sess := v.(*Session)
			st.sessions.SetDefault(id, sess)
			return sess
		}
	}

	id := uuid.New().String()
	sess := &Session{}
	st.sessions.SetDefault(id, sess)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return sess
}
