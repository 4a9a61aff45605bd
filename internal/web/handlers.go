package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/JonMunkholm/IRM/internal/i18n"
	"github.com/JonMunkholm/IRM/internal/logging"
	"github.com/JonMunkholm/IRM/internal/web/templates"
	"github.com/a-h/templ"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.service.Sessions().Len(),
	})
}

// handleForm renders the entry form with default values.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	labels := s.labels(r)
	values := core.DefaultSubmission()
	s.renderPage(w, r, http.StatusOK, labels, templates.TabForm, templates.FormPage(templates.FormParams{
		Labels:    labels,
		CSRFToken: csrfTokenFrom(r.Context()),
		Values:    values,
		Preview:   s.preview(values),
	}))
}

// handleSubmit scores and saves one submission, then re-renders the form.
// Invalid input re-renders the form with the entered values and a 422.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	labels := s.labels(r)
	sess := sessionFrom(ctx)

	sub, err := parseSubmission(r.PostForm)
	if err == nil {
		var rec core.Record
		rec, err = s.service.Submit(ctx, sess.ID, sub)
		if err == nil {
			values := core.DefaultSubmission()
			s.renderPage(w, r, http.StatusOK, labels, templates.TabForm, templates.FormPage(templates.FormParams{
				Labels:    labels,
				CSRFToken: csrfTokenFrom(ctx),
				Values:    values,
				Preview:   s.preview(values),
				Saved:     &rec,
			}))
			return
		}
	}

	if !core.IsUserFacing(err) {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if isHTMX(r) {
		s.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	logging.FromContext(ctx).Warn("submission rejected", "error", err)
	msg := localize(labels, core.MapError(err))
	s.renderPage(w, r, http.StatusUnprocessableEntity, labels, templates.TabForm, templates.FormPage(templates.FormParams{
		Labels:    labels,
		CSRFToken: csrfTokenFrom(ctx),
		Values:    sub,
		Preview:   s.preview(sub),
		Error:     &msg,
	}))
}

// preview scores the values shown on the form. Values that do not score
// get no preview.
func (s *Server) preview(values core.Submission) *core.Evaluation {
	eval, err := s.service.Preview(values)
	if err != nil {
		return nil
	}
	return &eval
}

// handleRecords renders the list of saved records.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	labels := s.labels(r)
	records, err := s.service.Records(sessionFrom(r.Context()).ID)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	params, err := recordsParams(labels, records)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, http.StatusOK, labels, templates.TabList, templates.RecordsPage(params))
}

// handleExport downloads the session's records as a CSV report. Passing
// columns=full exports every record field.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	full := r.URL.Query().Get("columns") == "full"

	file, err := s.service.Export(r.Context(), sessionFrom(r.Context()).ID, full)
	if errors.Is(err, core.ErrNoRecords) && !isHTMX(r) && !wantsJSON(r) {
		labels := s.labels(r)
		s.renderPage(w, r, http.StatusNotFound, labels, templates.TabList, templates.RecordsPage(templates.RecordsParams{Labels: labels}))
		return
	}
	if err != nil {
		s.respondError(w, r, err, exportStatus(err))
		return
	}

	w.Header().Set("Content-Type", file.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data)
}

func exportStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrNoRecords), errors.Is(err, core.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleLanguage switches the session language and returns to the page the
// switch was made from.
func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.service.SetLanguage(r.Context(), sessionFrom(r.Context()).ID, r.PostFormValue("lang")); err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	http.Redirect(w, r, returnPath(r.Referer()), http.StatusSeeOther)
}

// returnPath keeps redirects on the two pages of the app.
func returnPath(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path != "/records" {
		return "/"
	}
	return u.Path
}

// scoreResponse is the JSON body of /api/score.
type scoreResponse struct {
	core.Evaluation
	EngagementRateDisplay string `json:"engagement_rate_display"`
	QualitativeInt        int    `json:"qualitative_int"`
}

// handleScore previews the evaluation of a JSON submission without saving.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxFormSize)

	var sub core.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.respondError(w, r, fmt.Errorf("decode request: %w", err), http.StatusBadRequest)
		return
	}

	eval, err := s.service.Preview(sub)
	if err != nil {
		s.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, scoreResponse{
		Evaluation:            eval,
		EngagementRateDisplay: core.FormatEngagementRate(eval.EngagementRate),
		QualitativeInt:        eval.QualitativeInt(),
	})
}

// handleListRecordsJSON returns the session's records as JSON.
func (s *Server) handleListRecordsJSON(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.Records(sessionFrom(r.Context()).ID)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records": records,
		"count":   len(records),
	})
}

// labels returns the label table of the request's session. Requests outside
// a session are served in the language their Accept-Language header prefers.
func (s *Server) labels(r *http.Request) *i18n.Table {
	catalog := s.service.Catalog()
	if sess := sessionFrom(r.Context()); sess != nil {
		return catalog.Lookup(string(sess.Language()))
	}
	return catalog.Lookup(string(catalog.Negotiate(r.Header.Get("Accept-Language"))))
}

// renderPage wraps body in the layout and writes it with status.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, labels *i18n.Table, tab templates.Tab, body templ.Component) {
	page := templates.Layout(templates.LayoutParams{
		Labels:    labels,
		Languages: s.service.Catalog().Languages(),
		CSRFToken: csrfTokenFrom(r.Context()),
		Active:    tab,
	}, body)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("failed to render page", "error", err)
	}
}

// recordsParams builds the list view rows in the label table's column order.
func recordsParams(labels *i18n.Table, records []core.Record) (templates.RecordsParams, error) {
	columns := labels.Columns()
	params := templates.RecordsParams{
		Labels:  labels,
		Columns: columns,
		Rows:    make([][]string, 0, len(records)),
		Notes:   make([]templates.RecordNotes, 0, len(records)),
	}

	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			v, err := core.ColumnValue(rec, col)
			if err != nil {
				return templates.RecordsParams{}, err
			}
			row[i] = v
		}
		params.Rows = append(params.Rows, row)
		params.Notes = append(params.Notes, templates.RecordNotes{
			Title:   strings.TrimSpace(rec.Date + " " + rec.Name + " " + rec.Account),
			Comment: RenderMarkdown(rec.Comment),
			Caption: RenderMarkdown(rec.Caption),
			Replies: RenderMarkdown(rec.CommentsText),
		})
	}
	return params, nil
}

// parseSubmission reads a submission from form values. Text fields are kept
// verbatim; numeric fields must be whole numbers.
func parseSubmission(form url.Values) (core.Submission, error) {
	sub := core.Submission{
		Name:      form.Get(templates.FieldName),
		Account:   form.Get(templates.FieldAccount),
		ShipDate:  form.Get(templates.FieldShipDate),
		GuideDate: form.Get(templates.FieldGuideDate),
		Products:  form.Get(templates.FieldProducts),
		PostDate:  form.Get(templates.FieldPostDate),
		Caption:   form.Get(templates.FieldCaption),
		Replies:   form.Get(templates.FieldReplies),
		Comment:   form.Get(templates.FieldComment),
	}

	p := numberParser{form: form}
	sub.Ratings = core.Ratings{
		NeedResolution:  int(p.int(templates.FieldNeedResolution)),
		SloganFit:       int(p.int(templates.FieldSloganFit)),
		LifestyleFusion: int(p.int(templates.FieldLifestyleFusion)),
		Deadline:        int(p.int(templates.FieldDeadline)),
		GuideCompliance: int(p.int(templates.FieldGuideCompliance)),
		Communication:   int(p.int(templates.FieldCommunication)),
	}
	sub.Metrics = core.Metrics{
		Reach:    p.int(templates.FieldReach),
		Likes:    p.int(templates.FieldLikes),
		Comments: p.int(templates.FieldComments),
		Shares:   p.int(templates.FieldShares),
	}
	return sub, p.err
}

// numberParser parses integer fields and keeps the first failure.
type numberParser struct {
	form url.Values
	err  error
}

func (p *numberParser) int(field string) int64 {
	raw := p.form.Get(field)
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid number for %s: %q", field, raw)
	}
	return n
}
