package app

import "time"

// RepositoryContribution aggregates one developer's contribution records for
// one repository.
type RepositoryContribution struct {
	Commits       []Commit        `json:"commits"`
	PullRequests  []PullRequest   `json:"pull_requests"`
	Reviews       []Review        `json:"reviews"`
	Issues        []Issue         `json:"issues"`
	PRComments    []ReviewComment `json:"pr_comments"`
	IssueComments []Comment       `json:"issue_comments"`
}

// NewRepositoryContribution returns a contribution with all collections
// initialized, so empty collections persist as [] and not null.
func NewRepositoryContribution() *RepositoryContribution {
	return &RepositoryContribution{
		Commits:       make([]Commit, 0),
		PullRequests:  make([]PullRequest, 0),
		Reviews:       make([]Review, 0),
		Issues:        make([]Issue, 0),
		PRComments:    make([]ReviewComment, 0),
		IssueComments: make([]Comment, 0),
	}
}

// FilterByRange drops every record whose timestamp falls outside the range.
// It re-checks both bounds regardless of which layer already enforced one of
// them at query level.
func (rc *RepositoryContribution) FilterByRange(r DateRange) {
	if r.IsZero() {
		return
	}
	rc.Commits = filterByTime(rc.Commits, r, func(c Commit) time.Time { return c.Commit.Author.Date })
	rc.PullRequests = filterByTime(rc.PullRequests, r, func(pr PullRequest) time.Time { return pr.CreatedAt })
	rc.Reviews = filterByTime(rc.Reviews, r, func(rv Review) time.Time { return rv.SubmittedAt })
	rc.Issues = filterByTime(rc.Issues, r, func(i Issue) time.Time { return i.CreatedAt })
	rc.PRComments = filterByTime(rc.PRComments, r, func(c ReviewComment) time.Time { return c.CreatedAt })
	rc.IssueComments = filterByTime(rc.IssueComments, r, func(c Comment) time.Time { return c.CreatedAt })
}

func filterByTime[T any](items []T, r DateRange, timestamp func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if r.Contains(timestamp(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Summary holds the six collection totals across all repositories of a
// snapshot. It is derived, never mutated independently.
type Summary struct {
	TotalCommits       int `json:"total_commits"`
	TotalPRs           int `json:"total_prs"`
	TotalReviews       int `json:"total_reviews"`
	TotalIssues        int `json:"total_issues"`
	TotalPRComments    int `json:"total_pr_comments"`
	TotalIssueComments int `json:"total_issue_comments"`
}

// Snapshot is the complete contribution dataset for one developer as of one
// collection run. It is written once and never updated in place.
type Snapshot struct {
	Developer    string                             `json:"developer"`
	Organization string                             `json:"organization"`
	CollectedAt  time.Time                          `json:"collected_at"`
	Repositories map[string]*RepositoryContribution `json:"repositories"`
	Summary      Summary                            `json:"summary"`
}

// ComputeSummary recalculates the summary totals from the repository map.
func (s *Snapshot) ComputeSummary() {
	var sum Summary
	for _, rc := range s.Repositories {
		sum.TotalCommits += len(rc.Commits)
		sum.TotalPRs += len(rc.PullRequests)
		sum.TotalReviews += len(rc.Reviews)
		sum.TotalIssues += len(rc.Issues)
		sum.TotalPRComments += len(rc.PRComments)
		sum.TotalIssueComments += len(rc.IssueComments)
	}
	s.Summary = sum
}
