package stats

import (
	"github.com/wttj/ic-metrics/internal/app"
)

// PullRequestStats describes pull request patterns across all repositories
// of a snapshot.
type PullRequestStats struct {
	TotalPRs       int            `json:"total_prs"`
	States         map[string]int `json:"pr_states"`
	AvgSize        float64        `json:"avg_pr_size"`
	MergeRate      float64        `json:"pr_merge_rate"`
	AvgDaysToMerge float64        `json:"avg_time_to_merge"`
}

// AnalyzePullRequests computes pull request pattern statistics.
func AnalyzePullRequests(snapshot *app.Snapshot) PullRequestStats {
	var prs []app.PullRequest
	for _, rc := range snapshot.Repositories {
		prs = append(prs, rc.PullRequests...)
	}
	if len(prs) == 0 {
		return PullRequestStats{}
	}

	states := make(map[string]int)
	var size int
	var merged int
	var mergeDays float64
	for _, pr := range prs {
		states[pr.State]++
		size += pr.Additions + pr.Deletions
		if pr.MergedAt != nil {
			merged++
			mergeDays += pr.MergedAt.Sub(pr.CreatedAt).Hours() / 24
		}
	}

	s := PullRequestStats{
		TotalPRs:  len(prs),
		States:    states,
		AvgSize:   round2(float64(size) / float64(len(prs))),
		MergeRate: percentage(merged, len(prs)),
	}
	if merged > 0 {
		s.AvgDaysToMerge = round2(mergeDays / float64(merged))
	}

	return s
}
