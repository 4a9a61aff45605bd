package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/JonMunkholm/IRM/internal/logging"
)

type sessionKey struct{}

// sessionMiddleware attaches the caller's session to the request context,
// starting a new one when the cookie is missing or stale.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(s.cfg.Session.CookieName); err == nil {
			id = c.Value
		}

		sess := s.service.StartSession(r.Context(), id, r.Header.Get("Accept-Language"))
		if sess.ID != id {
			http.SetCookie(w, &http.Cookie{
				Name:     s.cfg.Session.CookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   s.cfg.Security.SecureCookies,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		ctx = logging.WithContext(ctx, "session_id", sess.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session set by sessionMiddleware, or nil.
func sessionFrom(ctx context.Context) *core.Session {
	sess, _ := ctx.Value(sessionKey{}).(*core.Session)
	return sess
}
