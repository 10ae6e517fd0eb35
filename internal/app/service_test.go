package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wttj/ic-metrics/internal/app"
	"github.com/wttj/ic-metrics/internal/app/mock"
)

type stubStore struct {
	snapshots []*app.Snapshot
	err       error
}

func (s *stubStore) Save(snapshot *app.Snapshot) error {
	if s.err != nil {
		return s.err
	}
	s.snapshots = append(s.snapshots, snapshot)
	return nil
}

// expectDiscovery wires the discovery strategy calls to return the given
// repositories from the authored searches and nothing from the rest.
func expectDiscovery(m *mock.MockGithubClient, repos []app.Repository) {
	m.EXPECT().
		SearchAuthoredRepositories(gomock.Any(), "jane", gomock.Any(), gomock.Nil()).
		Return(repos, nil).
		Times(3)
	m.EXPECT().
		SearchContributedRepositoryNames(gomock.Any(), "jane", gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, nil).
		Times(3)
	m.EXPECT().
		UserActivityRepositoryNames(gomock.Any(), "jane").
		Return(nil, nil)
}

// expectEmptyCollection wires all per-repository fetches to return nothing.
func expectEmptyCollection(m *mock.MockGithubClient, repoName string) {
	m.EXPECT().
		Commits(gomock.Any(), repoName, "jane", gomock.Nil()).
		Return(nil, nil)
	m.EXPECT().
		PullRequests(gomock.Any(), repoName, "jane", gomock.Nil()).
		Return(nil, nil)
	m.EXPECT().
		Issues(gomock.Any(), repoName, gomock.Any(), gomock.Nil()).
		Return(nil, nil).
		Times(2)
	m.EXPECT().
		PullRequestComments(gomock.Any(), repoName, "jane", gomock.Nil()).
		Return(nil, nil)
	m.EXPECT().
		IssueComments(gomock.Any(), repoName, "jane", gomock.Nil()).
		Return(nil, nil)
}

func TestServiceCollectDeveloperDataEmptyDiscovery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock.NewMockGithubClient(ctrl)
	expectDiscovery(m, nil)

	store := &stubStore{}
	s := app.NewService(m, store, "acme", 4, false, testLogger())

	snapshot, err := s.CollectDeveloperData(context.Background(), "jane", app.DateRange{})
	require.NoError(t, err)

	// Zero repositories is a legitimate outcome and still persisted.
	require.Len(t, store.snapshots, 1)
	assert.Equal(t, "jane", snapshot.Developer)
	assert.Equal(t, "acme", snapshot.Organization)
	assert.Empty(t, snapshot.Repositories)
	assert.Equal(t, app.Summary{}, snapshot.Summary)
	assert.False(t, snapshot.CollectedAt.IsZero())
}

func TestServiceCollectDeveloperData(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock.NewMockGithubClient(ctrl)
	expectDiscovery(m, []app.Repository{
		{ID: 1, Name: "api"},
		{ID: 2, Name: "web"},
	})

	commitDate := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	m.EXPECT().
		Commits(gomock.Any(), "api", "jane", gomock.Nil()).
		Return([]app.Commit{
			{SHA: "aaa", Commit: app.CommitDetail{Author: app.CommitActor{Date: commitDate}}},
		}, nil)
	m.EXPECT().
		PullRequests(gomock.Any(), "api", "jane", gomock.Nil()).
		Return(nil, nil)
	m.EXPECT().
		Issues(gomock.Any(), "api", gomock.Any(), gomock.Nil()).
		Return(nil, nil).
		Times(2)
	m.EXPECT().
		PullRequestComments(gomock.Any(), "api", "jane", gomock.Nil()).
		Return(nil, nil)
	m.EXPECT().
		IssueComments(gomock.Any(), "api", "jane", gomock.Nil()).
		Return(nil, nil)

	expectEmptyCollection(m, "web")

	store := &stubStore{}
	s := app.NewService(m, store, "acme", 2, false, testLogger())

	snapshot, err := s.CollectDeveloperData(context.Background(), "jane", app.DateRange{})
	require.NoError(t, err)

	require.Len(t, store.snapshots, 1)
	require.Len(t, snapshot.Repositories, 2)
	require.Contains(t, snapshot.Repositories, "api")
	require.Contains(t, snapshot.Repositories, "web")
	assert.Len(t, snapshot.Repositories["api"].Commits, 1)
	assert.Equal(t, app.Summary{TotalCommits: 1}, snapshot.Summary)
}

func TestServiceCollectDeveloperDataAuthErrorAborts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock.NewMockGithubClient(ctrl)
	expectDiscovery(m, []app.Repository{{ID: 1, Name: "api"}})

	m.EXPECT().
		Commits(gomock.Any(), "api", "jane", gomock.Nil()).
		Return(nil, &app.AuthenticationError{Endpoint: "/repos/acme/api/commits"})
	m.EXPECT().
		PullRequests(gomock.Any(), "api", "jane", gomock.Nil()).
		Return(nil, nil)
	m.EXPECT().
		Issues(gomock.Any(), "api", gomock.Any(), gomock.Nil()).
		Return(nil, nil).
		Times(2)
	m.EXPECT().
		PullRequestComments(gomock.Any(), "api", "jane", gomock.Nil()).
		Return(nil, nil)
	m.EXPECT().
		IssueComments(gomock.Any(), "api", "jane", gomock.Nil()).
		Return(nil, nil)

	store := &stubStore{}
	s := app.NewService(m, store, "acme", 1, false, testLogger())

	_, err := s.CollectDeveloperData(context.Background(), "jane", app.DateRange{})
	require.Error(t, err)
	assert.True(t, app.IsAuthenticationError(err))
	assert.Empty(t, store.snapshots)
}

func TestServiceCollectDeveloperDataSaveError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock.NewMockGithubClient(ctrl)
	expectDiscovery(m, nil)

	store := &stubStore{err: errors.New("disk full")}
	s := app.NewService(m, store, "acme", 1, false, testLogger())

	_, err := s.CollectDeveloperData(context.Background(), "jane", app.DateRange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
