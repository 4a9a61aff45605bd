package web

// errors.go provides unified error response handling for the web layer.
//
// The technical error is logged with the request id and session id; the
// client receives the user-facing message from core.MapError, translated
// through the request's label table and rendered as an HTMX fragment, JSON
// or plain text depending on the request.

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/JonMunkholm/IRM/internal/i18n"
	"github.com/JonMunkholm/IRM/internal/logging"
	"github.com/JonMunkholm/IRM/internal/web/templates"
)

var (
	errRateLimited = errors.New("rate limit exceeded")
	errCSRF        = errors.New("invalid csrf token")
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs err and writes the mapped user message in the format
// the client expects.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := s.userMessage(r, err)

	logger := logging.FromContext(r.Context())
	logAt := logger.Warn
	if statusCode >= http.StatusInternalServerError {
		logAt = logger.Error
	}
	logAt("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	switch {
	case isHTMX(r):
		renderErrorPartial(w, r, userMsg, statusCode)
	case wantsJSON(r):
		respondErrorJSON(w, userMsg, statusCode)
	default:
		respondErrorHTML(w, userMsg, statusCode)
	}
}

// userMessage maps err and translates it for the request's language.
func (s *Server) userMessage(r *http.Request, err error) core.UserMessage {
	return localize(s.labels(r), core.MapError(err))
}

// localize replaces the message and action with the labels of msg.Code.
// Codes without labels keep the mapped text.
func localize(labels *i18n.Table, msg core.UserMessage) core.UserMessage {
	if text, ok := labels.Find(i18n.MessageKey(msg.Code)); ok {
		msg.Message = text
	}
	if text, ok := labels.Find(i18n.ActionKey(msg.Code)); ok {
		msg.Action = text
	}
	return msg
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

// respondErrorHTML writes a plain text error response.
func respondErrorHTML(w http.ResponseWriter, msg core.UserMessage, statusCode int) {
	http.Error(w, msg.Message+" ("+msg.Code+")", statusCode)
}

// renderErrorPartial renders an HTMX-compatible error fragment.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
