package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/IRM/internal/config"
	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Rate.Enabled = false
	for _, m := range mutate {
		m(cfg)
	}

	svc, err := core.NewService(cfg)
	require.NoError(t, err)

	srv := NewServer(svc, cfg)
	t.Cleanup(func() { srv.Shutdown(t.Context()) })
	return srv
}

// browser replays the cookies a real browser would keep.
type browser struct {
	t       *testing.T
	srv     *Server
	cookies map[string]*http.Cookie
	lang    string
}

func newBrowser(t *testing.T, srv *Server) *browser {
	return &browser{t: t, srv: srv, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	if b.lang != "" {
		req.Header.Set("Accept-Language", b.lang)
	}
	rec := httptest.NewRecorder()
	b.srv.Router().ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if _, ok := b.cookies[csrfCookieName]; !ok {
		b.get("/")
	}
	form = cloneValues(form)
	form.Set(csrfFormField, b.cookies[csrfCookieName].Value)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func validForm() url.Values {
	return url.Values{
		"name":             {"Minji"},
		"account":          {"@minji"},
		"ship_date":        {"2026-10-01"},
		"guide_date":       {"2026-10-02"},
		"products":         {"세럼 1개"},
		"post_date":        {"2026-10-10"},
		"need_resolution":  {"5"},
		"slogan_fit":       {"5"},
		"lifestyle_fusion": {"5"},
		"deadline":         {"5"},
		"guide_compliance": {"5"},
		"communication":    {"5"},
		"reach":            {"1000"},
		"likes":            {"100"},
		"comments":         {"50"},
		"shares":           {"50"},
		"caption":          {"캡션"},
		"replies":          {"댓글"},
		"comment":          {"**great** fit <script>alert(1)</script>"},
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := newBrowser(t, srv).get("/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestForm_StartsSession(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IRM 관리 시스템")
	assert.Contains(t, rec.Body.String(), `value="5000"`)
	assert.Contains(t, b.cookies, "irm_session")
	assert.Contains(t, b.cookies, csrfCookieName)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))

	// The cookie is reused rather than starting another session.
	b.get("/")
	assert.Equal(t, 1, srv.service.Sessions().Len())
}

func TestForm_ShowsLivePreview(t *testing.T) {
	srv := newTestServer(t)
	rec := newBrowser(t, srv).get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<span class="metric" id="live-er">5.20%</span>`)
	assert.Contains(t, body, `<span class="metric tier" id="live-tier">Supporter</span>`)
	assert.Contains(t, body, `fetch("/api/score"`)
}

func TestSubmit_RejectedShowsNoPreview(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)

	form := validForm()
	form.Set("reach", "0")
	rec := b.post("/records", form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `<span class="metric" id="live-er">-</span>`)
}

func TestForm_NegotiatesLanguage(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)
	b.lang = "en-US,en;q=0.9"

	rec := b.get("/")
	assert.Contains(t, rec.Body.String(), "IRM Management System")
	assert.Contains(t, rec.Body.String(), `<html lang="en">`)
}

func TestSubmit_SavesRecord(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)

	rec := b.post("/records", validForm())
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "데이터베이스에 저장되었습니다!")
	assert.Contains(t, body, "20.00%")
	assert.Contains(t, body, "Partner")

	api := b.get("/api/records")
	require.Equal(t, http.StatusOK, api.Code)

	var payload struct {
		Records []core.Record `json:"records"`
		Count   int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(api.Body.Bytes(), &payload))
	require.Equal(t, 1, payload.Count)
	assert.Equal(t, "Minji", payload.Records[0].Name)
	assert.Equal(t, core.TierPartner, payload.Records[0].Tier)
	assert.Equal(t, time.Now().Format(core.DateLayout), payload.Records[0].Date)
}

func TestSubmit_StoresLFLineBreaks(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)

	form := validForm()
	form.Set("comment", "첫 줄\r\n둘째 줄")
	require.Equal(t, http.StatusOK, b.post("/records", form).Code)

	records, err := srv.service.Records(b.cookies["irm_session"].Value)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "첫 줄\n둘째 줄", records[0].Comment)

	rec := b.get("/export")
	require.Equal(t, http.StatusOK, rec.Code)
	report, err := core.ReadCSV(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "첫 줄\n둘째 줄", report.Rows[0][7])
}

func TestSubmit_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		wantCode string
	}{
		{"zero reach", "reach", "0", "VAL001"},
		{"rating above range", "deadline", "6", "VAL002"},
		{"not a number", "likes", "1.5k", "VAL003"},
		{"empty number", "shares", "", "VAL003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			b := newBrowser(t, srv)

			form := validForm()
			form.Set(tt.field, tt.value)
			rec := b.post("/records", form)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Contains(t, rec.Body.String(), `value="Minji"`, "entered values are kept")

			records, err := srv.service.Records(b.cookies["irm_session"].Value)
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestSubmit_RejectedInSessionLanguage(t *testing.T) {
	tests := []struct {
		lang    string
		want    string
		notWant string
	}{
		{"ko-KR", "조회수(Reach)는 1 이상이어야 합니다", "Reach must be at least 1"},
		{"en-US", "Reach must be at least 1", "조회수(Reach)는 1 이상이어야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			srv := newTestServer(t)
			b := newBrowser(t, srv)
			b.lang = tt.lang

			form := validForm()
			form.Set("reach", "0")
			rec := b.post("/records", form)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, tt.notWant)
			assert.Contains(t, body, "VAL001")
		})
	}
}

func TestLocalize_EveryMessageCode(t *testing.T) {
	srv := newTestServer(t)
	catalog := srv.service.Catalog()

	for _, lang := range catalog.Languages() {
		labels := catalog.Lookup(string(lang))
		for _, code := range core.MessageCodes() {
			msg := localize(labels, core.UserMessage{Message: "untranslated", Action: "untranslated", Code: code})
			assert.NotEqual(t, "untranslated", msg.Message, "%s %s message", lang, code)
			assert.NotEqual(t, "untranslated", msg.Action, "%s %s action", lang, code)
			assert.Equal(t, code, msg.Code)
		}
	}
}

func TestSubmit_RequiresCSRFToken(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)
	b.get("/")

	req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(validForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := b.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "SES002")
}

func TestSubmit_CSRFHeader(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)
	b.get("/")

	req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(validForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(csrfHeader, b.cookies[csrfCookieName].Value)
	rec := b.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecords_Empty(t *testing.T) {
	srv := newTestServer(t)
	rec := newBrowser(t, srv).get("/records")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "저장된 데이터가 없습니다.")
	assert.NotContains(t, rec.Body.String(), `href="/export"`)
}

func TestRecords_RendersSanitizedNotes(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)
	b.post("/records", validForm())

	rec := b.get("/records")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<th>Post_Date</th>")
	assert.Contains(t, body, "<strong>great</strong>")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, `href="/export"`)
}

func TestExport_Empty(t *testing.T) {
	srv := newTestServer(t)
	rec := newBrowser(t, srv).get("/export")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "저장된 데이터가 없습니다.")
}

func TestExport_EmptyJSON(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	req.Header.Set("Accept", "application/json")
	rec := newBrowser(t, srv).do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"EXP001"`)
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)

	first := validForm()
	second := validForm()
	second.Set("name", "Jisoo, \"J\"")
	b.post("/records", first)
	b.post("/records", second)

	rec := b.get("/export")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="`+core.ReportFilename(time.Now())+`"`,
		rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\xEF\xBB\xBF")))

	report, err := core.ReadCSV(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Name", "Account", "Tier", "ER", "Products", "Post_Date", "Comment"}, report.Header)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Minji", report.Rows[0][1])
	assert.Equal(t, "Jisoo, \"J\"", report.Rows[1][1])
	assert.Equal(t, "20.00%", report.Rows[0][4])
	assert.Equal(t, "세럼 1개", report.Rows[0][5])
}

func TestExport_FullColumns(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)
	b.post("/records", validForm())

	rec := b.get("/export?columns=full")
	require.Equal(t, http.StatusOK, rec.Code)

	report, err := core.ReadCSV(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, core.FullColumns, report.Header)
	assert.Equal(t, "100", report.Rows[0][9])
}

func TestLanguage(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)
	b.get("/")

	form := url.Values{"lang": {"EN"}}
	form.Set(csrfFormField, b.cookies[csrfCookieName].Value)
	req := httptest.NewRequest(http.MethodPost, "/lang", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://localhost:8501/records")
	rec := b.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/records", rec.Header().Get("Location"))
	assert.Contains(t, b.get("/").Body.String(), "Save Analysis")

	// Unknown codes fall back to the base language.
	b.post("/lang", url.Values{"lang": {"FR"}})
	assert.Contains(t, b.get("/").Body.String(), "분석 결과 저장")
}

func TestReturnPath(t *testing.T) {
	assert.Equal(t, "/records", returnPath("http://localhost/records"))
	assert.Equal(t, "/", returnPath("http://localhost/"))
	assert.Equal(t, "/", returnPath("https://evil.example/elsewhere"))
	assert.Equal(t, "/", returnPath(""))
}

func TestAPIScore(t *testing.T) {
	srv := newTestServer(t)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid", func(t *testing.T) {
		rec := post(`{"ratings":{"need_resolution":3,"slogan_fit":3,"lifestyle_fusion":3,"deadline":3,"guide_compliance":3,"communication":3},
			"metrics":{"reach":5000,"likes":200,"comments":50,"shares":10}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var got scoreResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, core.TierSupporter, got.Tier)
		assert.Equal(t, "5.20%", got.EngagementRateDisplay)
		assert.Equal(t, 60, got.QualitativeInt)
	})

	t.Run("invalid reach", func(t *testing.T) {
		rec := post(`{"ratings":{"need_resolution":3,"slogan_fit":3,"lifestyle_fusion":3,"deadline":3,"guide_compliance":3,"communication":3},
			"metrics":{"reach":0}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"VAL001"`)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := post(`{"ratings":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	assert.Equal(t, 0, srv.service.Sessions().Len(), "scoring does not start sessions")
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Rate.Enabled = true
		cfg.Rate.RequestsPerMinute = 2
	})
	b := newBrowser(t, srv)

	assert.Equal(t, http.StatusOK, b.get("/healthz").Code)
	assert.Equal(t, http.StatusOK, b.get("/healthz").Code)

	rec := b.get("/healthz")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE001")
	assert.Contains(t, rec.Body.String(), "요청이 너무 많습니다")
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	b.lang = "en"
	rec = b.get("/healthz")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
}

func TestRespondError_HTMX(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	req.Header.Set("HX-Request", "true")
	rec := newBrowser(t, srv).do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="alert alert-error"`)
	assert.Contains(t, rec.Body.String(), "EXP001")
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := newRateLimiter(1, time.Minute)
	defer rl.stop()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("1.1.1.1"))
	assert.False(t, rl.allow("1.1.1.1"))
	assert.True(t, rl.allow("2.2.2.2"), "limits are per IP")

	now = now.Add(61 * time.Second)
	assert.True(t, rl.allow("1.1.1.1"))
}
