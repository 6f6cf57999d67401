// Package flash carries one-shot notices between requests in a session
// cookie, so a successful submission can redirect and still confirm itself
// on the next page.
package flash

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionKey = "notice"

// Manager wraps a cookie session store for flash messages.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager signing its cookie with secret. An empty
// secret gets a random per-process key, which is fine for development but
// drops messages across restarts; production should configure one.
func NewManager(secret, cookieName string, secure bool, logger *zap.Logger) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		logger.Warn("no session key configured; using a random per-process key")
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: cookieName, log: logger}
}

// Set stores a one-shot message for the next request.
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, msg string) {
	sess, _ := m.store.Get(r, m.name)
	sess.AddFlash(msg, sessionKey)
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash save failed", zap.Error(err))
	}
}

// Pop returns and clears the pending message, or "" when none is set.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) string {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// A stale or re-keyed cookie decodes as no message.
		return ""
	}
	msgs := sess.Flashes(sessionKey)
	if len(msgs) == 0 {
		return ""
	}
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash clear failed", zap.Error(err))
	}
	if s, ok := msgs[0].(string); ok {
		return s
	}
	return ""
}
