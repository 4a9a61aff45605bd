package core

// scoring.go implements the evaluation formula for an influencer submission.
//
// The calculation runs in three steps:
//  1. Engagement rate: (likes + comments + shares) / reach * 100
//  2. Qualitative score: sum of six 1-5 ratings / 30 * 100
//  3. Total: qualitative*0.7 + min(engagement*10, 100)*0.3
//
// The total is compared against the tier thresholds without rounding. The
// engagement rate is only rounded for display.

import (
	"errors"
	"fmt"
	"math"
)

// Tier is the relationship classification derived from a total score.
type Tier string

const (
	TierPartner   Tier = "Partner"
	TierAdvocate  Tier = "Advocate"
	TierSupporter Tier = "Supporter"
	TierExplorer  Tier = "Explorer"
)

// Tiers lists every tier from highest to lowest.
var Tiers = []Tier{TierPartner, TierAdvocate, TierSupporter, TierExplorer}

// Minimum total score for each tier, highest first.
const (
	PartnerThreshold   = 85.0
	AdvocateThreshold  = 70.0
	SupporterThreshold = 40.0
)

// Rating bounds for every sub-score.
const (
	MinRating = 1
	MaxRating = 5
)

const (
	ratingCount       = 6
	qualitativeWeight = 0.7
	engagementWeight  = 0.3
	engagementScale   = 10.0
	engagementCap     = 100.0
)

var (
	// ErrInvalidReach is returned when reach is below 1.
	ErrInvalidReach = errors.New("invalid reach: must be at least 1")

	// ErrRatingOutOfRange is returned when a rating falls outside MinRating-MaxRating.
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// Ratings holds the six manual sub-scores. The first three measure brand
// narrative fit, the last three collaboration professionalism.
type Ratings struct {
	NeedResolution  int `json:"need_resolution"`
	SloganFit       int `json:"slogan_fit"`
	LifestyleFusion int `json:"lifestyle_fusion"`
	Deadline        int `json:"deadline"`
	GuideCompliance int `json:"guide_compliance"`
	Communication   int `json:"communication"`
}

// ratingField pairs a rating's form name with its value.
type ratingField struct {
	Name  string
	Value int
}

func (r Ratings) fields() [ratingCount]ratingField {
	return [ratingCount]ratingField{
		{"need_resolution", r.NeedResolution},
		{"slogan_fit", r.SloganFit},
		{"lifestyle_fusion", r.LifestyleFusion},
		{"deadline", r.Deadline},
		{"guide_compliance", r.GuideCompliance},
		{"communication", r.Communication},
	}
}

// Sum returns the total of all six ratings.
func (r Ratings) Sum() int {
	total := 0
	for _, f := range r.fields() {
		total += f.Value
	}
	return total
}

// Validate checks that every rating is within MinRating-MaxRating.
func (r Ratings) Validate() error {
	for _, f := range r.fields() {
		if f.Value < MinRating || f.Value > MaxRating {
			return fmt.Errorf("%w: %s = %d (want %d-%d)", ErrRatingOutOfRange, f.Name, f.Value, MinRating, MaxRating)
		}
	}
	return nil
}

// Metrics holds the quantitative counters of a campaign post.
type Metrics struct {
	Reach    int64 `json:"reach"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

// Validate rejects a reach below 1, which would divide by zero.
// Likes, comments and shares are not constrained.
func (m Metrics) Validate() error {
	if m.Reach < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidReach, m.Reach)
	}
	return nil
}

// Evaluation is the outcome of scoring one submission.
type Evaluation struct {
	EngagementRate   float64 `json:"engagement_rate"`
	QualitativeScore float64 `json:"qualitative_score"`
	TotalScore       float64 `json:"total_score"`
	Tier             Tier    `json:"tier"`
}

// QualitativeInt returns the qualitative score truncated toward zero.
func (e Evaluation) QualitativeInt() int {
	return int(math.Trunc(e.QualitativeScore))
}

// Evaluate validates the inputs and computes the scores and tier.
func Evaluate(r Ratings, m Metrics) (Evaluation, error) {
	if err := r.Validate(); err != nil {
		return Evaluation{}, err
	}
	if err := m.Validate(); err != nil {
		return Evaluation{}, err
	}

	er := EngagementRate(m)
	qual := QualitativeScore(r)
	total := TotalScore(qual, er)

	return Evaluation{
		EngagementRate:   er,
		QualitativeScore: qual,
		TotalScore:       total,
		Tier:             ClassifyTier(total),
	}, nil
}

// EngagementRate returns (likes + comments + shares) / reach * 100.
// The caller must ensure reach is at least 1.
func EngagementRate(m Metrics) float64 {
	// Sum as floats so large counters cannot wrap around.
	return (float64(m.Likes) + float64(m.Comments) + float64(m.Shares)) / float64(m.Reach) * 100
}

// QualitativeScore normalizes the rating sum to 0-100.
func QualitativeScore(r Ratings) float64 {
	return float64(r.Sum()) / (ratingCount * MaxRating) * 100
}

// TotalScore blends the qualitative score with the capped engagement score.
func TotalScore(qual, er float64) float64 {
	// Conversions force each product to round before the sum (no FMA).
	weightedQual := float64(qual * qualitativeWeight)
	weightedEngagement := float64(math.Min(er*engagementScale, engagementCap) * engagementWeight)
	return weightedQual + weightedEngagement
}

// ClassifyTier maps a total score to its tier. Thresholds are inclusive.
func ClassifyTier(total float64) Tier {
	switch {
	case total >= PartnerThreshold:
		return TierPartner
	case total >= AdvocateThreshold:
		return TierAdvocate
	case total >= SupporterThreshold:
		return TierSupporter
	default:
		return TierExplorer
	}
}

// FormatEngagementRate renders a rate as a two-decimal percentage, e.g. "5.20%".
func FormatEngagementRate(er float64) string {
	return fmt.Sprintf("%.2f%%", er)
}
