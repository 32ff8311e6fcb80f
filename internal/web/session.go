package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"digikart/internal/storefront"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionCookie names the cookie carrying the storefront session id.
const SessionCookie = "digikart_session"

// session pairs a controller with its last activity time.
type session struct {
	controller *storefront.Controller
	lastSeen   time.Time
}

// SessionManager maps browser sessions to their storefront controllers.
// Sessions live in memory only: a cart is transient state and is lost when
// the session expires or the process restarts.
type SessionManager struct {
	mu            sync.Mutex
	sessions      map[string]*session
	ttl           time.Duration
	newController func() *storefront.Controller
	logger        zerolog.Logger
}

// NewSessionManager creates a session manager. newController builds the
// state object for each fresh session.
func NewSessionManager(ttl time.Duration, newController func() *storefront.Controller, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		sessions:      make(map[string]*session),
		ttl:           ttl,
		newController: newController,
		logger:        logger.With().Str("component", "sessions").Logger(),
	}
}

// Attach resolves the request's session, creating one (and setting the
// session cookie) when none exists, and returns its controller.
func (m *SessionManager) Attach(w http.ResponseWriter, r *http.Request) *storefront.Controller {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		m.mu.Lock()
		if sess, ok := m.sessions[cookie.Value]; ok {
			sess.lastSeen = time.Now()
			m.mu.Unlock()
			return sess.controller
		}
		m.mu.Unlock()
	}

	id := uuid.NewString()
	ctrl := m.newController()

	m.mu.Lock()
	m.sessions[id] = &session{controller: ctrl, lastSeen: time.Now()}
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	m.logger.Debug().Str("session_id", id).Msg("session created")

	return ctrl
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartJanitor prunes idle sessions every interval until ctx is cancelled.
func (m *SessionManager) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.prune(time.Now())
			}
		}
	}()
}

// prune drops sessions idle longer than the TTL.
func (m *SessionManager) prune(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > m.ttl {
			delete(m.sessions, id)
			m.logger.Debug().Str("session_id", id).Msg("session expired")
		}
	}
}
