package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Service orchestrates repository discovery and per-repository collection for
// a developer, and persists the resulting snapshot.
type Service struct {
	aggregator   *RepositoryAggregator
	collector    *RepositoryCollector
	store        SnapshotStore
	organization string
	maxWorkers   int
	now          func() time.Time
	l            logrus.FieldLogger
}

// NewService creates new Service instance. maxWorkers bounds the number of
// repositories collected in parallel.
func NewService(
	client GithubClient,
	store SnapshotStore,
	organization string,
	maxWorkers int,
	enrichCommitStats bool,
	l logrus.FieldLogger,
) *Service {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	return &Service{
		aggregator:   NewRepositoryAggregator(client, l.WithField("component", "aggregator")),
		collector:    NewRepositoryCollector(client, enrichCommitStats, l.WithField("component", "repositoryCollector")),
		store:        store,
		organization: organization,
		maxWorkers:   maxWorkers,
		now:          time.Now,
		l:            l,
	}
}

// CollectDeveloperData discovers the user's repositories, collects every
// repository's contributions through a bounded worker pool, computes the
// summary and persists the snapshot.
//
// Zero discovered repositories is a legitimate outcome and produces a
// persisted all-zero snapshot. A failure collecting a single repository is
// logged and that repository is omitted; only authentication errors abort the
// whole run.
func (s *Service) CollectDeveloperData(ctx context.Context, username string, dateRange DateRange) (*Snapshot, error) {
	s.l.Infof("collecting data for developer: %s", username)

	repos, err := s.aggregator.AggregateUserRepositories(ctx, username, dateRange.Since)
	if err != nil {
		return nil, fmt.Errorf("aggregating repositories: %w", err)
	}

	snapshot := &Snapshot{
		Developer:    username,
		Organization: s.organization,
		CollectedAt:  s.now().UTC(),
		Repositories: make(map[string]*RepositoryContribution, len(repos)),
	}

	if len(repos) == 0 {
		s.l.Warnf("no repositories found with contributions from %s", username)
		if err := s.store.Save(snapshot); err != nil {
			return nil, fmt.Errorf("saving snapshot: %w", err)
		}
		return snapshot, nil
	}

	s.l.Infof("starting data collection for %d repositories", len(repos))

	// Every worker writes only its own slot; the map is assembled after the
	// pool drains, from the single orchestrating goroutine.
	results := make([]*RepositoryContribution, len(repos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			rc, err := s.collector.Collect(gctx, repo.Name, username, dateRange)
			if err != nil {
				if IsAuthenticationError(err) {
					return err
				}
				s.l.Warnf("collecting repository %s: %v", repo.Name, err)
				return nil
			}
			results[i] = rc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, repo := range repos {
		if results[i] == nil {
			continue
		}
		snapshot.Repositories[repo.Name] = results[i]
	}
	snapshot.ComputeSummary()

	if err := s.store.Save(snapshot); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	s.l.Infof(
		"data collection completed: %d commits, %d prs, %d reviews, %d issues, %d pr comments, %d issue comments",
		snapshot.Summary.TotalCommits,
		snapshot.Summary.TotalPRs,
		snapshot.Summary.TotalReviews,
		snapshot.Summary.TotalIssues,
		snapshot.Summary.TotalPRComments,
		snapshot.Summary.TotalIssueComments,
	)

	return snapshot, nil
}
