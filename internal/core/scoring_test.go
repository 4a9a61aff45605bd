package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformRatings(v int) Ratings {
	return Ratings{
		NeedResolution:  v,
		SloganFit:       v,
		LifestyleFusion: v,
		Deadline:        v,
		GuideCompliance: v,
		Communication:   v,
	}
}

func TestEvaluate_Examples(t *testing.T) {
	tests := []struct {
		name     string
		ratings  Ratings
		metrics  Metrics
		wantER   float64
		wantQual float64
		wantTier Tier
	}{
		{
			name:     "top ratings and high engagement",
			ratings:  uniformRatings(5),
			metrics:  Metrics{Reach: 1000, Likes: 100, Comments: 50, Shares: 50},
			wantER:   20,
			wantQual: 100,
			wantTier: TierPartner,
		},
		{
			name:     "bottom ratings and low engagement",
			ratings:  uniformRatings(1),
			metrics:  Metrics{Reach: 10000, Likes: 10},
			wantER:   0.1,
			wantQual: 20,
			wantTier: TierExplorer,
		},
		{
			name:     "form defaults",
			ratings:  uniformRatings(3),
			metrics:  Metrics{Reach: 5000, Likes: 200, Comments: 50, Shares: 10},
			wantER:   5.2,
			wantQual: 60,
			wantTier: TierSupporter,
		},
		{
			name:     "top ratings without engagement lands on advocate threshold",
			ratings:  uniformRatings(5),
			metrics:  Metrics{Reach: 1000},
			wantER:   0,
			wantQual: 100,
			wantTier: TierAdvocate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := Evaluate(tt.ratings, tt.metrics)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantER, eval.EngagementRate, 1e-9)
			assert.InDelta(t, tt.wantQual, eval.QualitativeScore, 1e-9)
			assert.Equal(t, tt.wantTier, eval.Tier)
			assert.Equal(t, ClassifyTier(eval.TotalScore), eval.Tier)
		})
	}
}

func TestEvaluate_TotalScoreFormula(t *testing.T) {
	eval, err := Evaluate(uniformRatings(5), Metrics{Reach: 1000, Likes: 100, Comments: 50, Shares: 50})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, eval.TotalScore, 1e-9)

	eval, err = Evaluate(uniformRatings(3), Metrics{Reach: 5000, Likes: 200, Comments: 50, Shares: 10})
	require.NoError(t, err)
	assert.InDelta(t, 60*0.7+52*0.3, eval.TotalScore, 1e-9)
}

func TestTotalScore_EngagementCapped(t *testing.T) {
	// 50% engagement scales to 500 and is capped at 100.
	assert.InDelta(t, 20*0.7+100*0.3, TotalScore(20, 50), 1e-9)
	assert.InDelta(t, 20*0.7+100*0.3, TotalScore(20, 10), 1e-9)
	assert.InDelta(t, 20*0.7+99*0.3, TotalScore(20, 9.9), 1e-9)
}

func TestClassifyTier_Boundaries(t *testing.T) {
	below := func(x float64) float64 { return math.Nextafter(x, 0) }

	tests := []struct {
		total float64
		want  Tier
	}{
		{100, TierPartner},
		{85.0, TierPartner},
		{below(85.0), TierAdvocate},
		{70.0, TierAdvocate},
		{below(70.0), TierSupporter},
		{40.0, TierSupporter},
		{below(40.0), TierExplorer},
		{0, TierExplorer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTier(tt.total), "ClassifyTier(%v)", tt.total)
	}
}

func TestClassifyTier_AlwaysKnownTier(t *testing.T) {
	known := make(map[Tier]bool)
	for _, tier := range Tiers {
		known[tier] = true
	}

	for r := MinRating; r <= MaxRating; r++ {
		for _, likes := range []int64{0, 1, 10, 100, 1000, 100000} {
			eval, err := Evaluate(uniformRatings(r), Metrics{Reach: 1000, Likes: likes})
			require.NoError(t, err)
			assert.True(t, known[eval.Tier], "unexpected tier %q", eval.Tier)
		}
	}
}

func TestEvaluate_InvalidReach(t *testing.T) {
	for _, reach := range []int64{0, -1, -5000} {
		_, err := Evaluate(uniformRatings(3), Metrics{Reach: reach, Likes: 10})
		assert.True(t, errors.Is(err, ErrInvalidReach), "reach %d: got %v", reach, err)
	}
}

func TestEvaluate_RatingOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		ratings Ratings
		field   string
	}{
		{"zero", Ratings{NeedResolution: 0, SloganFit: 3, LifestyleFusion: 3, Deadline: 3, GuideCompliance: 3, Communication: 3}, "need_resolution"},
		{"six", Ratings{NeedResolution: 3, SloganFit: 3, LifestyleFusion: 3, Deadline: 3, GuideCompliance: 3, Communication: 6}, "communication"},
		{"negative", Ratings{NeedResolution: 3, SloganFit: 3, LifestyleFusion: 3, Deadline: -1, GuideCompliance: 3, Communication: 3}, "deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.ratings, Metrics{Reach: 100})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRatingOutOfRange)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestEvaluate_NegativeCountersAccepted(t *testing.T) {
	eval, err := Evaluate(uniformRatings(3), Metrics{Reach: 100, Likes: -10})
	require.NoError(t, err)
	assert.InDelta(t, -10.0, eval.EngagementRate, 1e-9)
}

func TestEvaluate_LargeCountersDoNotOverflow(t *testing.T) {
	m := Metrics{Reach: 1, Likes: math.MaxInt64, Comments: math.MaxInt64, Shares: 1}
	eval, err := Evaluate(uniformRatings(5), m)
	require.NoError(t, err)

	assert.Greater(t, eval.EngagementRate, 0.0)
	assert.InDelta(t, 100.0, eval.TotalScore, 1e-9)
	assert.Equal(t, TierPartner, eval.Tier)
}

func TestEvaluation_QualitativeIntTruncates(t *testing.T) {
	r := Ratings{NeedResolution: 3, SloganFit: 3, LifestyleFusion: 3, Deadline: 3, GuideCompliance: 3, Communication: 2}
	eval, err := Evaluate(r, Metrics{Reach: 1})
	require.NoError(t, err)

	assert.InDelta(t, 56.666, eval.QualitativeScore, 0.001)
	assert.Equal(t, 56, eval.QualitativeInt())
}

func TestRatings_Sum(t *testing.T) {
	r := Ratings{NeedResolution: 1, SloganFit: 2, LifestyleFusion: 3, Deadline: 4, GuideCompliance: 5, Communication: 1}
	assert.Equal(t, 16, r.Sum())
}

func TestFormatEngagementRate(t *testing.T) {
	tests := []struct {
		er   float64
		want string
	}{
		{20, "20.00%"},
		{5.2, "5.20%"},
		{0.1, "0.10%"},
		{1.0 / 3.0 * 100, "33.33%"},
		{0, "0.00%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEngagementRate(tt.er))
	}
}
