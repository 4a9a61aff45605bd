package cli

import (
	"encoding/json"
	"fmt"

	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	return LeafCommand{
		Use:   "score",
		Short: "Compute the engagement rate and tier of one evaluation",
		Long: `Compute the engagement rate, qualitative score and tier from flags.

Ratings range from 1 to 5. Reach must be at least 1.`,
		Args: cobra.NoArgs,
		IntFlags: []IntFlag{
			{Name: "need-resolution", Usage: "need resolution rating (1-5)", Default: core.DefaultRating},
			{Name: "slogan-fit", Usage: "slogan fit rating (1-5)", Default: core.DefaultRating},
			{Name: "lifestyle-fusion", Usage: "lifestyle fusion rating (1-5)", Default: core.DefaultRating},
			{Name: "deadline", Usage: "deadline adherence rating (1-5)", Default: core.DefaultRating},
			{Name: "guide-compliance", Usage: "guide compliance rating (1-5)", Default: core.DefaultRating},
			{Name: "communication", Usage: "communication manners rating (1-5)", Default: core.DefaultRating},
			{Name: "reach", Usage: "views", Default: core.DefaultReach},
			{Name: "likes", Usage: "likes", Default: core.DefaultLikes},
			{Name: "comments", Usage: "comments", Default: core.DefaultComments},
			{Name: "shares", Usage: "shares", Default: core.DefaultShares},
		},
		BoolFlags: []BoolFlag{
			{Name: "json", Usage: "print the result as JSON"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ratings, metrics := scoreInputs(cmd)
			asJSON, _ := cmd.Flags().GetBool("json")
			return runScore(cmd, ratings, metrics, asJSON)
		},
	}.Build()
}

func scoreInputs(cmd *cobra.Command) (core.Ratings, core.Metrics) {
	get := func(name string) int64 {
		v, _ := cmd.Flags().GetInt64(name)
		return v
	}
	ratings := core.Ratings{
		NeedResolution:  int(get("need-resolution")),
		SloganFit:       int(get("slogan-fit")),
		LifestyleFusion: int(get("lifestyle-fusion")),
		Deadline:        int(get("deadline")),
		GuideCompliance: int(get("guide-compliance")),
		Communication:   int(get("communication")),
	}
	metrics := core.Metrics{
		Reach:    get("reach"),
		Likes:    get("likes"),
		Comments: get("comments"),
		Shares:   get("shares"),
	}
	return ratings, metrics
}

func runScore(cmd *cobra.Command, ratings core.Ratings, metrics core.Metrics, asJSON bool) error {
	eval, err := core.Evaluate(ratings, metrics)
	if err != nil {
		return fmt.Errorf("%s: %w", core.FormatUserError(err), err)
	}

	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(eval)
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Engagement rate:"), Primary(core.FormatEngagementRate(eval.EngagementRate)))
	_, _ = fmt.Fprintf(w, "%s     %d\n", Silent("Qualitative:"), eval.QualitativeInt())
	_, _ = fmt.Fprintf(w, "%s           %.2f\n", Silent("Total:"), eval.TotalScore)
	_, _ = fmt.Fprintf(w, "%s            %s\n", Silent("Tier:"), TierText(eval.Tier))
	return nil
}
