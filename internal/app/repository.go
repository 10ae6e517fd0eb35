package app

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// RepositoryCollector fetches every contribution kind of one developer for a
// single repository.
//
// Commits, pull requests, issues, pr comments and issue comments have no data
// dependency on each other and are fetched concurrently. Reviews are scoped
// to pull request numbers and are fetched only after the pull request list is
// complete.
type RepositoryCollector struct {
	client      GithubClient
	enrichStats bool
	l           logrus.FieldLogger
}

// NewRepositoryCollector creates new RepositoryCollector instance.
// When enrichStats is set, collected commits are refetched individually to
// fill in their line change stats, which the list endpoint omits.
func NewRepositoryCollector(client GithubClient, enrichStats bool, l logrus.FieldLogger) *RepositoryCollector {
	return &RepositoryCollector{
		client:      client,
		enrichStats: enrichStats,
		l:           l,
	}
}

// Collect gathers all six contribution collections for repoName.
//
// A failing fetch for a single kind degrades that kind to an empty collection
// with a warning. Only authentication errors fail the whole repository.
func (c *RepositoryCollector) Collect(ctx context.Context, repoName, username string, dateRange DateRange) (*RepositoryContribution, error) {
	rc := NewRepositoryContribution()

	fetches := []struct {
		kind string
		run  func() error
	}{
		{"commits", func() error {
			commits, err := c.client.Commits(ctx, repoName, username, dateRange.Since)
			if err != nil {
				return err
			}
			rc.Commits = commits
			return nil
		}},
		{"pull requests", func() error {
			prs, err := c.client.PullRequests(ctx, repoName, username, dateRange.Since)
			if err != nil {
				return err
			}
			rc.PullRequests = prs
			return nil
		}},
		{"issues", func() error {
			issues, err := c.collectIssues(ctx, repoName, username, dateRange)
			if err != nil {
				return err
			}
			rc.Issues = issues
			return nil
		}},
		{"pr comments", func() error {
			comments, err := c.client.PullRequestComments(ctx, repoName, username, dateRange.Since)
			if err != nil {
				return err
			}
			rc.PRComments = comments
			return nil
		}},
		{"issue comments", func() error {
			comments, err := c.client.IssueComments(ctx, repoName, username, dateRange.Since)
			if err != nil {
				return err
			}
			rc.IssueComments = comments
			return nil
		}},
	}

	// Each fetch writes only its own collection; results are observed after
	// the join point.
	errs := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		i, f := i, f
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = f.run()
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		if IsAuthenticationError(err) {
			return nil, err
		}
		c.l.Warnf("%s: fetching %s: %v", repoName, fetches[i].kind, err)
	}

	reviews, err := c.collectReviews(ctx, repoName, username, rc.PullRequests, dateRange)
	if err != nil {
		if IsAuthenticationError(err) {
			return nil, err
		}
		c.l.Warnf("%s: fetching reviews: %v", repoName, err)
	} else {
		rc.Reviews = reviews
	}

	rc.FilterByRange(dateRange)

	if c.enrichStats {
		c.enrichCommitStats(ctx, repoName, rc)
	}

	return rc, nil
}

// collectIssues unions issues created by and assigned to the user,
// deduplicated by issue id.
func (c *RepositoryCollector) collectIssues(ctx context.Context, repoName, username string, dateRange DateRange) ([]Issue, error) {
	created, err := c.client.Issues(ctx, repoName, IssueFilter{Creator: username}, dateRange.Since)
	if err != nil {
		return nil, err
	}
	assigned, err := c.client.Issues(ctx, repoName, IssueFilter{Assignee: username}, dateRange.Since)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(created)+len(assigned))
	issues := make([]Issue, 0, len(created)+len(assigned))
	for _, issue := range append(created, assigned...) {
		if seen[issue.ID] {
			continue
		}
		seen[issue.ID] = true
		issues = append(issues, issue)
	}

	return issues, nil
}

// collectReviews fetches the reviews of every collected pull request, keeps
// those submitted by the user within the date range, and backfills empty
// COMMENTED review bodies from their inline comments.
func (c *RepositoryCollector) collectReviews(ctx context.Context, repoName, username string, prs []PullRequest, dateRange DateRange) ([]Review, error) {
	reviews := make([]Review, 0)
	for _, pr := range prs {
		prReviews, err := c.client.Reviews(ctx, repoName, pr.Number)
		if err != nil {
			return nil, err
		}

		comments, err := c.client.ReviewComments(ctx, repoName, pr.Number)
		if err != nil {
			if IsAuthenticationError(err) {
				return nil, err
			}
			c.l.Warnf("%s: fetching review comments for pr %d: %v", repoName, pr.Number, err)
			comments = nil
		}
		prReviews = EnrichReviews(prReviews, comments)

		for _, review := range prReviews {
			if review.User.Login != username {
				continue
			}
			if !dateRange.Contains(review.SubmittedAt) {
				continue
			}
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

// enrichCommitStats refetches each commit individually to obtain its line
// change stats. Failures keep the original record.
func (c *RepositoryCollector) enrichCommitStats(ctx context.Context, repoName string, rc *RepositoryContribution) {
	for i := range rc.Commits {
		if rc.Commits[i].Stats != nil {
			continue
		}
		detailed, err := c.client.Commit(ctx, repoName, rc.Commits[i].SHA)
		if err != nil {
			c.l.Warnf("%s: fetching stats for commit %s: %v", repoName, rc.Commits[i].SHA, err)
			continue
		}
		rc.Commits[i].Stats = detailed.Stats
	}
}
