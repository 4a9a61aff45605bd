// Package templates holds the HTML components of the evaluation form.
//
// Components are written in .templ files; the _templ.go files are generated
// with `templ generate` and committed.
package templates

import (
	"strconv"
	"strings"

	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/JonMunkholm/IRM/internal/i18n"
)

// Tab identifies the active navigation tab.
type Tab string

const (
	TabForm Tab = "form"
	TabList Tab = "list"
)

// LayoutParams holds the page chrome shared by every page.
type LayoutParams struct {
	Labels    *i18n.Table
	Languages []i18n.Lang
	CSRFToken string
	Active    Tab
}

// Form field names shared by the page and the request parser.
const (
	FieldName            = "name"
	FieldAccount         = "account"
	FieldShipDate        = "ship_date"
	FieldGuideDate       = "guide_date"
	FieldProducts        = "products"
	FieldPostDate        = "post_date"
	FieldNeedResolution  = "need_resolution"
	FieldSloganFit       = "slogan_fit"
	FieldLifestyleFusion = "lifestyle_fusion"
	FieldDeadline        = "deadline"
	FieldGuideCompliance = "guide_compliance"
	FieldCommunication   = "communication"
	FieldReach           = "reach"
	FieldLikes           = "likes"
	FieldComments        = "comments"
	FieldShares          = "shares"
	FieldCaption         = "caption"
	FieldReplies         = "replies"
	FieldComment         = "comment"
)

// FormParams holds the data of the entry form page. Preview is the
// evaluation of Values, or nil when they do not score.
type FormParams struct {
	Labels    *i18n.Table
	CSRFToken string
	Values    core.Submission
	Preview   *core.Evaluation
	Saved     *core.Record
	Error     *core.UserMessage
}

// RecordNotes holds the free-text fields of a record as sanitized HTML.
type RecordNotes struct {
	Title   string
	Comment string
	Caption string
	Replies string
}

// RecordsParams holds the data of the list page.
type RecordsParams struct {
	Labels  *i18n.Table
	Columns []string
	Rows    [][]string
	Notes   []RecordNotes
}

type ratingInput struct {
	field string
	label i18n.Key
	value int
}

func narrativeRatings(r core.Ratings) []ratingInput {
	return []ratingInput{
		{FieldNeedResolution, i18n.KeyNeedResolution, r.NeedResolution},
		{FieldSloganFit, i18n.KeySloganFit, r.SloganFit},
		{FieldLifestyleFusion, i18n.KeyLifestyleFusion, r.LifestyleFusion},
	}
}

func professionalismRatings(r core.Ratings) []ratingInput {
	return []ratingInput{
		{FieldDeadline, i18n.KeyDeadline, r.Deadline},
		{FieldGuideCompliance, i18n.KeyGuideCompliance, r.GuideCompliance},
		{FieldCommunication, i18n.KeyCommunication, r.Communication},
	}
}

// previewER and previewTier show a dash until the values score.
func previewER(e *core.Evaluation) string {
	if e == nil {
		return "-"
	}
	return core.FormatEngagementRate(e.EngagementRate)
}

func previewTier(e *core.Evaluation) string {
	if e == nil {
		return "-"
	}
	return string(e.Tier)
}

func hasNotes(n RecordNotes) bool {
	return n.Comment != "" || n.Caption != "" || n.Replies != ""
}

func langAttr(l i18n.Lang) string {
	return strings.ToLower(string(l))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

const stylesheet = `<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f7f7f9;color:#222}
header{background:#1f2937;color:#fff;padding:1rem 2rem;display:flex;justify-content:space-between;align-items:center}
header h1{margin:0;font-size:1.4rem}
nav a{margin-right:1rem;color:#1f2937;text-decoration:none;padding:.5rem 0;display:inline-block}
nav a.active{border-bottom:2px solid #ef4444;font-weight:600}
main{padding:1rem 2rem;max-width:72rem}
fieldset{border:1px solid #ddd;border-radius:6px;margin-bottom:1rem;background:#fff}
label{display:block;margin:.4rem 0}
input,textarea,select{width:100%;box-sizing:border-box;padding:.3rem}
.cols{display:grid;grid-template-columns:repeat(3,1fr);gap:1rem}
.alert{padding:.75rem 1rem;border-radius:6px;margin:1rem 0}
.alert-error{background:#fee2e2}.alert-info{background:#e0f2fe}.alert-success{background:#dcfce7}
table{border-collapse:collapse;width:100%;background:#fff}
th,td{border:1px solid #ddd;padding:.4rem;text-align:left;vertical-align:top}
.summary span{margin-right:1rem}
.metric{font-size:1.6rem;font-weight:600}
</style>`
