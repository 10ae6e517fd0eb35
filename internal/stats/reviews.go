package stats

import (
	"time"

	"github.com/wttj/ic-metrics/internal/app"
)

// ReviewStats describes review patterns across all repositories of a
// snapshot.
type ReviewStats struct {
	TotalReviews     int            `json:"total_reviews"`
	States           map[string]int `json:"review_states"`
	AvgReviewsPerDay float64        `json:"avg_reviews_per_day"`
}

// AnalyzeReviews computes review pattern statistics.
func AnalyzeReviews(snapshot *app.Snapshot) ReviewStats {
	var reviews []app.Review
	for _, rc := range snapshot.Repositories {
		reviews = append(reviews, rc.Reviews...)
	}
	if len(reviews) == 0 {
		return ReviewStats{}
	}

	states := make(map[string]int)
	dates := make([]time.Time, 0, len(reviews))
	for _, r := range reviews {
		states[r.State]++
		dates = append(dates, r.SubmittedAt)
	}

	return ReviewStats{
		TotalReviews:     len(reviews),
		States:           states,
		AvgReviewsPerDay: round2(float64(len(reviews)) / durationDays(dates)),
	}
}
