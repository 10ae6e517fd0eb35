// Package stats computes descriptive statistics over a collected developer
// snapshot. All functions are pure over the snapshot data model.
package stats

import (
	"math"
	"time"

	"github.com/wttj/ic-metrics/internal/app"
)

// Period is the observed activity window of a snapshot.
type Period struct {
	From         *time.Time `json:"from"`
	To           *time.Time `json:"to"`
	DurationDays int        `json:"duration_days"`
}

// Analysis is the full derived metrics document for one developer.
type Analysis struct {
	Developer       string               `json:"developer"`
	AnalyzedAt      time.Time            `json:"analyzed_at"`
	Period          Period               `json:"period"`
	Summary         app.Summary          `json:"summary"`
	Activity        []RepositoryActivity `json:"activity_by_repository"`
	Commits         CommitStats          `json:"commit_patterns"`
	PullRequests    PullRequestStats     `json:"pr_patterns"`
	Reviews         ReviewStats          `json:"review_patterns"`
	Recommendations []string             `json:"recommendations"`
}

// Analyze derives all metrics from a snapshot.
func Analyze(snapshot *app.Snapshot, now time.Time) *Analysis {
	return &Analysis{
		Developer:       snapshot.Developer,
		AnalyzedAt:      now.UTC(),
		Period:          analyzePeriod(snapshot),
		Summary:         snapshot.Summary,
		Activity:        AnalyzeActivity(snapshot),
		Commits:         AnalyzeCommits(snapshot),
		PullRequests:    AnalyzePullRequests(snapshot),
		Reviews:         AnalyzeReviews(snapshot),
		Recommendations: recommendations(snapshot.Summary),
	}
}

func analyzePeriod(snapshot *app.Snapshot) Period {
	var dates []time.Time
	for _, rc := range snapshot.Repositories {
		for _, c := range rc.Commits {
			dates = append(dates, c.Commit.Author.Date)
		}
		for _, pr := range rc.PullRequests {
			dates = append(dates, pr.CreatedAt)
		}
		for _, r := range rc.Reviews {
			dates = append(dates, r.SubmittedAt)
		}
		for _, i := range rc.Issues {
			dates = append(dates, i.CreatedAt)
		}
		for _, c := range rc.PRComments {
			dates = append(dates, c.CreatedAt)
		}
		for _, c := range rc.IssueComments {
			dates = append(dates, c.CreatedAt)
		}
	}
	if len(dates) == 0 {
		return Period{}
	}

	from, to := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}

	return Period{
		From:         &from,
		To:           &to,
		DurationDays: int(to.Sub(from).Hours() / 24),
	}
}

func recommendations(summary app.Summary) []string {
	var out []string
	if summary.TotalCommits < 10 {
		out = append(out, "Consider increasing commit frequency for better code tracking")
	}
	switch {
	case summary.TotalPRs == 0:
		out = append(out, "No pull requests found - consider using PRs for code review and collaboration")
	case summary.TotalPRs < summary.TotalCommits/10:
		out = append(out, "Consider creating more pull requests to improve code review process")
	}
	if summary.TotalReviews < summary.TotalPRs {
		out = append(out, "Increase participation in code reviews to improve team collaboration")
	}
	if summary.TotalIssues == 0 {
		out = append(out, "Consider engaging more with issues for better project planning and bug tracking")
	}
	if len(out) == 0 {
		out = append(out, "Great work on contributing to the codebase!")
	}

	return out
}

// durationDays returns the span of the given dates in days, at least one.
func durationDays(dates []time.Time) float64 {
	if len(dates) == 0 {
		return 1
	}
	first, last := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	return math.Max(last.Sub(first).Hours()/24, 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return round2(float64(count) / float64(total) * 100)
}
