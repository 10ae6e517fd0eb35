package app

import (
	"context"
	"time"
)

// Search item types for the github search grammar.
const (
	TypePullRequest = "pr"
	TypeIssue       = "issue"
)

// Relation filters for the issue search api.
const (
	RelationReviewedBy = "reviewed-by"
	RelationCommenter  = "commenter"
)

// IssueFilter selects issues by their relation to a user. Exactly one field
// is expected to be set per call.
type IssueFilter struct {
	Creator  string
	Assignee string
}

// GithubClient provides access to the github REST and search apis for one
// organization.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/wttj/ic-metrics/internal/app GithubClient
type GithubClient interface {
	// OrganizationRepositories returns every repository of the organization.
	OrganizationRepositories(ctx context.Context) ([]Repository, error)
	// RepositoryByName returns the canonical repository object for a name.
	RepositoryByName(ctx context.Context, name string) (Repository, error)
	// SearchAuthoredRepositories searches repositories containing items of
	// the given type authored by the user. An empty itemType searches code.
	SearchAuthoredRepositories(ctx context.Context, username, itemType string, since *time.Time) ([]Repository, error)
	// SearchContributedRepositoryNames searches issues or pull requests
	// related to the user (reviewed-by, commenter) and extracts the unique
	// repository names referenced by the results.
	SearchContributedRepositoryNames(ctx context.Context, username, relation, itemType string, since *time.Time) ([]string, error)
	// UserActivityRepositoryNames extracts organization repository names from
	// the user's public activity events.
	UserActivityRepositoryNames(ctx context.Context, username string) ([]string, error)

	Commits(ctx context.Context, repoName, author string, since *time.Time) ([]Commit, error)
	Commit(ctx context.Context, repoName, sha string) (Commit, error)
	PullRequests(ctx context.Context, repoName, author string, since *time.Time) ([]PullRequest, error)
	Reviews(ctx context.Context, repoName string, prNumber int) ([]Review, error)
	ReviewComments(ctx context.Context, repoName string, prNumber int) ([]ReviewComment, error)
	Issues(ctx context.Context, repoName string, filter IssueFilter, since *time.Time) ([]Issue, error)
	PullRequestComments(ctx context.Context, repoName, username string, since *time.Time) ([]ReviewComment, error)
	IssueComments(ctx context.Context, repoName, username string, since *time.Time) ([]Comment, error)
}

// SnapshotStore persists developer snapshots.
type SnapshotStore interface {
	Save(snapshot *Snapshot) error
}
