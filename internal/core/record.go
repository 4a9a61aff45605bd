package core

import "strings"

// DateLayout is the layout of Record.Date.
const DateLayout = "2006-01-02"

// Record is one saved influencer evaluation. Records are immutable once
// appended to a Store.
type Record struct {
	Date             string  `json:"date"`
	Name             string  `json:"name"`
	Account          string  `json:"account"`
	Tier             Tier    `json:"tier"`
	EngagementRate   float64 `json:"engagement_rate"`
	Products         string  `json:"products"`
	PostDate         string  `json:"post_date"`
	ShipDate         string  `json:"ship_date"`
	GuideDate        string  `json:"guide_date"`
	QualitativeScore int     `json:"qualitative_score"`
	Comment          string  `json:"comment"`
	Caption          string  `json:"caption"`
	CommentsText     string  `json:"comments_text"`
}

// ER returns the engagement rate formatted for display and export.
func (r Record) ER() string {
	return FormatEngagementRate(r.EngagementRate)
}

// Submission is the raw content of one form post.
type Submission struct {
	Name      string  `json:"name"`
	Account   string  `json:"account"`
	ShipDate  string  `json:"ship_date"`
	GuideDate string  `json:"guide_date"`
	Products  string  `json:"products"`
	PostDate  string  `json:"post_date"`
	Ratings   Ratings `json:"ratings"`
	Metrics   Metrics `json:"metrics"`
	Caption   string  `json:"caption"`
	Replies   string  `json:"replies"`
	Comment   string  `json:"comment"`
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeNewlines rewrites CRLF and lone CR line breaks as LF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return newlines.Replace(s)
}

// NewRecord builds the record for a scored submission. Free-text fields are
// stored with LF line breaks so the CSV export reads back unchanged.
func NewRecord(date string, sub Submission, eval Evaluation) Record {
	return Record{
		Date:             date,
		Name:             NormalizeNewlines(sub.Name),
		Account:          NormalizeNewlines(sub.Account),
		Tier:             eval.Tier,
		EngagementRate:   eval.EngagementRate,
		Products:         NormalizeNewlines(sub.Products),
		PostDate:         sub.PostDate,
		ShipDate:         sub.ShipDate,
		GuideDate:        sub.GuideDate,
		QualitativeScore: eval.QualitativeInt(),
		Comment:          NormalizeNewlines(sub.Comment),
		Caption:          NormalizeNewlines(sub.Caption),
		CommentsText:     NormalizeNewlines(sub.Replies),
	}
}

// Form defaults for a new submission.
const (
	DefaultRating   = 3
	DefaultReach    = 5000
	DefaultLikes    = 200
	DefaultComments = 50
	DefaultShares   = 10
)

// DefaultSubmission returns the values the entry form starts with.
func DefaultSubmission() Submission {
	return Submission{
		Ratings: Ratings{
			NeedResolution:  DefaultRating,
			SloganFit:       DefaultRating,
			LifestyleFusion: DefaultRating,
			Deadline:        DefaultRating,
			GuideCompliance: DefaultRating,
			Communication:   DefaultRating,
		},
		Metrics: Metrics{
			Reach:    DefaultReach,
			Likes:    DefaultLikes,
			Comments: DefaultComments,
			Shares:   DefaultShares,
		},
	}
}
