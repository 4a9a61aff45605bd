package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/IRM/internal/config"
	"github.com/JonMunkholm/IRM/internal/i18n"
	"github.com/JonMunkholm/IRM/internal/logging"
)

// Service provides the evaluation workflow: scoring submissions, keeping
// each session's records and exporting them.
type Service struct {
	sessions *SessionRegistry
	catalog  *i18n.Catalog
	cfg      *config.Config
	now      func() time.Time
}

// NewService creates a new Service instance.
func NewService(cfg *config.Config) (*Service, error) {
	catalog, err := i18n.Builtin(cfg.App.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("label catalog: %w", err)
	}

	return &Service{
		sessions: NewSessionRegistry(),
		catalog:  catalog,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}

// Catalog returns the label catalog used by the service.
func (s *Service) Catalog() *i18n.Catalog {
	return s.catalog
}

// Sessions returns the session registry.
func (s *Service) Sessions() *SessionRegistry {
	return s.sessions
}

// StartSession resolves the session for id, creating one when needed. The
// language of a new session is negotiated from acceptLanguage.
func (s *Service) StartSession(ctx context.Context, id, acceptLanguage string) *Session {
	sess, created := s.sessions.Resolve(id, s.catalog.Negotiate(acceptLanguage))
	if created {
		logging.FromContext(ctx).Info("session started",
			"session_id", sess.ID,
			"lang", sess.Language(),
			"active_sessions", s.sessions.Len(),
		)
	}
	return sess
}

// Labels returns the label table for a session.
func (s *Service) Labels(sessionID string) (*i18n.Table, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.catalog.Lookup(string(sess.Language())), nil
}

// SetLanguage switches a session's language. Unknown codes select the base
// language. Returns the language actually selected.
func (s *Service) SetLanguage(ctx context.Context, sessionID, code string) (i18n.Lang, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}

	lang := s.catalog.Resolve(code)
	if !s.catalog.Supports(code) {
		logging.FromContext(ctx).Warn("unsupported language, using fallback",
			"requested", code,
			"selected", lang,
		)
	}
	sess.SetLanguage(lang)
	return lang, nil
}

// Preview scores a submission without saving it.
func (s *Service) Preview(sub Submission) (Evaluation, error) {
	return Evaluate(sub.Ratings, sub.Metrics)
}

// Submit scores a submission and appends the resulting record to the
// session's store.
func (s *Service) Submit(ctx context.Context, sessionID string, sub Submission) (Record, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return Record{}, err
	}

	eval, err := Evaluate(sub.Ratings, sub.Metrics)
	if err != nil {
		return Record{}, fmt.Errorf("evaluate submission: %w", err)
	}

	rec := NewRecord(s.now().Format(DateLayout), sub, eval)
	sess.Store.Append(rec)

	logging.FromContext(ctx).Info("record saved",
		"tier", rec.Tier,
		"engagement_rate", rec.ER(),
		"total_score", eval.TotalScore,
		"records", sess.Store.Len(),
	)

	return rec, nil
}

// Records returns the session's records in insertion order.
func (s *Service) Records(sessionID string) ([]Record, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Store.List(), nil
}

// Export renders the session's records as a CSV report. With full set, all
// record fields are exported; otherwise only the report columns.
func (s *Service) Export(ctx context.Context, sessionID string, full bool) (*ExportFile, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	columns := s.catalog.Lookup(string(sess.Language())).Columns()
	if full {
		columns = FullColumns
	}

	file, err := RenderReport(sess.Store.List(), columns, s.now())
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("report exported",
		"filename", file.Filename,
		"rows", file.Rows,
		"bytes", len(file.Data),
	)
	return file, nil
}

// SessionConfig returns the sweeper settings derived from configuration.
func (s *Service) SessionConfig() SweepConfig {
	return SweepConfig{
		IdleTimeout:   s.cfg.Session.IdleTimeout,
		CheckInterval: s.cfg.Session.SweepInterval,
	}
}
