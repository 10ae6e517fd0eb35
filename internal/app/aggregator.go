package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// RepositoryAggregator discovers the repositories a developer has touched by
// combining several independent discovery strategies and deduplicating the
// union by repository id.
type RepositoryAggregator struct {
	client GithubClient
	l      logrus.FieldLogger
}

// NewRepositoryAggregator creates new RepositoryAggregator instance.
func NewRepositoryAggregator(client GithubClient, l logrus.FieldLogger) *RepositoryAggregator {
	return &RepositoryAggregator{
		client: client,
		l:      l,
	}
}

// AggregateUserRepositories runs all discovery strategies for a user.
//
// Search failures on a single strategy degrade that strategy instead of
// aborting: the authored searches fall back to the full organization
// repository list, the name-based strategies fall back to an empty set.
// Only authentication errors abort the aggregation.
func (a *RepositoryAggregator) AggregateUserRepositories(ctx context.Context, username string, since *time.Time) ([]Repository, error) {
	a.l.Infof("searching for repositories with contributions from %s", username)

	var all []Repository

	authored, err := a.authoredRepositories(ctx, username, since)
	if err != nil {
		return nil, err
	}
	all = append(all, authored...)

	names, err := a.contributedRepositoryNames(ctx, username, since)
	if err != nil {
		return nil, err
	}
	detailed, err := a.repositoriesByName(ctx, names)
	if err != nil {
		return nil, err
	}
	all = append(all, detailed...)

	active, err := a.activityRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	all = append(all, active...)

	unique := dedupeRepositories(all)
	a.l.Infof("found %d total repositories with contributions from %s", len(unique), username)

	return unique, nil
}

// authoredRepositories runs the three authored-item searches (code, pull
// requests, issues). A failing search falls back to fetching all organization
// repositories, a superset, prioritizing completeness over precision.
func (a *RepositoryAggregator) authoredRepositories(ctx context.Context, username string, since *time.Time) ([]Repository, error) {
	var out []Repository
	var fellBack bool

	for _, itemType := range []string{"", TypePullRequest, TypeIssue} {
		repos, err := a.client.SearchAuthoredRepositories(ctx, username, itemType, since)
		if err != nil {
			if IsAuthenticationError(err) {
				return nil, err
			}
			a.l.Warnf("repository search failed: %v", err)
			if fellBack {
				continue
			}
			a.l.Warn("falling back to fetching all organization repositories")
			repos, err = a.client.OrganizationRepositories(ctx)
			if err != nil {
				return nil, fmt.Errorf("fetching organization repositories: %w", err)
			}
			fellBack = true
		}
		out = append(out, repos...)
	}

	return out, nil
}

// contributedRepositoryNames collects repository names from the issue search
// strategies: reviewed pull requests, commented pull requests and commented
// issues. A failing strategy yields an empty set.
func (a *RepositoryAggregator) contributedRepositoryNames(ctx context.Context, username string, since *time.Time) ([]string, error) {
	strategies := []struct {
		relation string
		itemType string
		what     string
	}{
		{RelationReviewedBy, TypePullRequest, "reviewed prs"},
		{RelationCommenter, TypePullRequest, "commented prs"},
		{RelationCommenter, TypeIssue, "commented issues"},
	}

	var names []string
	for _, s := range strategies {
		found, err := a.client.SearchContributedRepositoryNames(ctx, username, s.relation, s.itemType, since)
		if err != nil {
			if IsAuthenticationError(err) {
				return nil, err
			}
			a.l.Warnf("%s search failed: %v", s.what, err)
			continue
		}
		a.l.Infof("found %d repositories from %s", len(found), s.what)
		names = append(names, found...)
	}

	return dedupeNames(names), nil
}

// activityRepositories extracts repositories from the user's public activity
// events. Failures degrade to an empty set.
func (a *RepositoryAggregator) activityRepositories(ctx context.Context, username string) ([]Repository, error) {
	names, err := a.client.UserActivityRepositoryNames(ctx, username)
	if err != nil {
		if IsAuthenticationError(err) {
			return nil, err
		}
		a.l.Warnf("could not fetch user activity: %v", err)
		return nil, nil
	}
	a.l.Infof("found %d additional repositories from user activity", len(names))

	return a.repositoriesByName(ctx, names)
}

// repositoriesByName fetches the canonical repository object for each name.
// A repository whose detail fetch fails is dropped with a warning, never
// failing the aggregation.
func (a *RepositoryAggregator) repositoriesByName(ctx context.Context, names []string) ([]Repository, error) {
	repos := make([]Repository, 0, len(names))
	for _, name := range names {
		repo, err := a.client.RepositoryByName(ctx, name)
		if err != nil {
			if IsAuthenticationError(err) {
				return nil, err
			}
			a.l.Warnf("could not fetch details for repository %s: %v", name, err)
			continue
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

func dedupeRepositories(repos []Repository) []Repository {
	seen := make(map[int64]bool, len(repos))
	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}

	return out
}

func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}

	return out
}
