package github

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wttj/ic-metrics/internal/app"
	"github.com/wttj/ic-metrics/internal/mock"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestClient(doer *mock.HTTPDoer) *Client {
	return NewClient(doer, doer, "https://fake", "token123", "acme", testLogger())
}

func TestClientRepositoryByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doer      *mock.HTTPDoer
		want      app.Repository
		wantErr   bool
		errorTest func(error) bool
	}{
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{"id": 42, "name": "api", "full_name": "acme/api"}`),
				},
			},
			want: app.Repository{ID: 42, Name: "api", FullName: "acme/api"},
		},
		{
			name: "status unauthorized",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusUnauthorized},
			},
			wantErr:   true,
			errorTest: app.IsAuthenticationError,
		},
		{
			name: "status forbidden",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
			},
			wantErr:   true,
			errorTest: app.IsRateLimitError,
		},
		{
			name: "status not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			wantErr:   true,
			errorTest: app.IsResourceNotFoundError,
		},
		{
			name: "status server error",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			wantErr: true,
			errorTest: func(err error) bool {
				apiErr, ok := app.AsAPIError(err)
				return ok && apiErr.StatusCode == http.StatusInternalServerError
			},
		},
		{
			name: "status ok, invalid body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{invalid`)},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(tt.doer)
			got, err := c.RepositoryByName(context.Background(), "api")
			require.Equal(t, tt.wantErr, err != nil)
			if tt.errorTest != nil {
				assert.True(t, tt.errorTest(err))
			}
			if !tt.wantErr {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClientRequestHeaders(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{[]byte(`{"id": 1, "name": "api"}`)},
	}

	c := newTestClient(doer)
	_, err := c.RepositoryByName(context.Background(), "api")
	require.NoError(t, err)

	require.Len(t, doer.Requests, 1)
	req := doer.Requests[0]
	assert.Equal(t, "https://fake/repos/acme/api", req.URL.String())
	assert.Equal(t, "application/vnd.github.v3+json", req.Header.Get("Accept"))
	assert.Equal(t, "token token123", req.Header.Get("Authorization"))
	assert.NotEmpty(t, req.Header.Get("User-Agent"))
}

func TestClientCommitsPagination(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[
				{"sha": "aaa", "commit": {"message": "feat: one", "author": {"name": "Jane", "date": "2024-01-10T10:00:00Z"}}},
				{"sha": "bbb", "commit": {"message": "fix: two", "author": {"name": "Jane", "date": "2024-01-11T10:00:00Z"}}}
			]`),
			[]byte(`[]`),
		},
	}

	c := newTestClient(doer)
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := c.Commits(context.Background(), "api", "jane", &since)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "aaa", got[0].SHA)
	assert.Equal(t, "feat: one", got[0].Commit.Message)

	require.Len(t, doer.Requests, 2)
	first := doer.Requests[0].URL
	assert.Equal(t, "/repos/acme/api/commits", first.Path)
	assert.Equal(t, "jane", first.Query().Get("author"))
	assert.Equal(t, "2024-01-01T00:00:00Z", first.Query().Get("since"))
	assert.Equal(t, "1", first.Query().Get("page"))
	assert.Equal(t, "100", first.Query().Get("per_page"))
	assert.Equal(t, "2", doer.Requests[1].URL.Query().Get("page"))
}

func TestClientPullRequestsFiltersClientSide(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[
				{"id": 1, "number": 5, "user": {"login": "jane"}, "created_at": "2024-01-10T10:00:00Z"},
				{"id": 2, "number": 6, "user": {"login": "bob"}, "created_at": "2024-01-11T10:00:00Z"},
				{"id": 3, "number": 7, "user": {"login": "jane"}, "created_at": "2023-06-01T10:00:00Z"}
			]`),
			[]byte(`[]`),
		},
	}

	c := newTestClient(doer)
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := c.PullRequests(context.Background(), "api", "jane", &since)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Number)

	assert.Equal(t, "all", doer.Requests[0].URL.Query().Get("state"))
}

func TestClientSearchContributedRepositoryNames(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`{
				"total_count": 2,
				"items": [
					{"repository_url": "https://api.github.com/repos/acme/api"},
					{"repository_url": "https://api.github.com/repos/acme/web"}
				]
			}`),
		},
	}

	c := newTestClient(doer)
	got, err := c.SearchContributedRepositoryNames(context.Background(), "jane", "reviewed-by", "pr", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "web"}, got)

	require.Len(t, doer.Requests, 1)
	q := doer.Requests[0].URL.Query()
	assert.Equal(t, "/search/issues", doer.Requests[0].URL.Path)
	assert.Equal(t, "org:acme reviewed-by:jane type:pr", q.Get("q"))
}

func TestClientSearchPaginationStopsAtTotalCount(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`{"total_count": 3, "items": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]}`),
			[]byte(`{"total_count": 3, "items": [{"id": 3, "name": "c"}]}`),
		},
	}

	c := newTestClient(doer)
	c.pageSize = 2
	got, err := c.SearchAuthoredRepositories(context.Background(), "jane", "pr", nil)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Len(t, doer.Requests, 2)
}

func TestClientUserActivityRepositoryNames(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[
				{"repo": {"name": "acme/api"}},
				{"repo": {"name": "other/thing"}}
			]`),
			[]byte(`[]`),
		},
	}

	c := newTestClient(doer)
	got, err := c.UserActivityRepositoryNames(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, []string{"api"}, got)
	assert.Equal(t, "/users/jane/events/public", doer.Requests[0].URL.Path)
}
