package web

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	csrfCookieName = "irm_csrf"
	csrfFormField  = "csrf_token"
	csrfHeader     = "X-CSRF-Token"
)

type csrfKey struct{}

// csrfMiddleware implements the double-submit cookie pattern. Safe methods
// get a token cookie; unsafe methods must echo it in the form field or the
// X-CSRF-Token header. Form bodies are capped at MaxFormSize.
func (s *Server) csrfMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(csrfCookieName); err == nil {
			token = c.Value
		}

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if token == "" {
				token = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteStrictMode,
					Secure:   s.cfg.Security.SecureCookies,
				})
			}
		default:
			r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxFormSize)
			if err := r.ParseForm(); err != nil {
				s.respondError(w, r, err, http.StatusRequestEntityTooLarge)
				return
			}
			if !validCSRF(r, token) {
				s.respondError(w, r, errCSRF, http.StatusForbidden)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), csrfKey{}, token)))
	})
}

// validCSRF reports whether the submitted token matches the cookie.
func validCSRF(r *http.Request, cookieToken string) bool {
	if cookieToken == "" {
		return false
	}
	token := r.Header.Get(csrfHeader)
	if token == "" {
		token = r.PostFormValue(csrfFormField)
	}
	return token == cookieToken
}

// csrfTokenFrom returns the token to embed in rendered forms.
func csrfTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(csrfKey{}).(string)
	return token
}
