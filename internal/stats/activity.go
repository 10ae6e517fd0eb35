package stats

import (
	"sort"

	"github.com/wttj/ic-metrics/internal/app"
)

// RepositoryActivity summarizes one repository's activity counts.
type RepositoryActivity struct {
	Repository    string `json:"repository"`
	Commits       int    `json:"commits"`
	PullRequests  int    `json:"pull_requests"`
	Reviews       int    `json:"reviews"`
	Issues        int    `json:"issues"`
	PRComments    int    `json:"pr_comments"`
	IssueComments int    `json:"issue_comments"`
	TotalActivity int    `json:"total_activity"`
}

// AnalyzeActivity computes the activity distribution across repositories,
// most active first.
func AnalyzeActivity(snapshot *app.Snapshot) []RepositoryActivity {
	out := make([]RepositoryActivity, 0, len(snapshot.Repositories))
	for name, rc := range snapshot.Repositories {
		a := RepositoryActivity{
			Repository:    name,
			Commits:       len(rc.Commits),
			PullRequests:  len(rc.PullRequests),
			Reviews:       len(rc.Reviews),
			Issues:        len(rc.Issues),
			PRComments:    len(rc.PRComments),
			IssueComments: len(rc.IssueComments),
		}
		a.TotalActivity = a.Commits + a.PullRequests + a.Reviews + a.Issues + a.PRComments + a.IssueComments
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalActivity != out[j].TotalActivity {
			return out[i].TotalActivity > out[j].TotalActivity
		}
		return out[i].Repository < out[j].Repository
	})

	return out
}
