package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wttj/ic-metrics/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches contribution data from the github REST and search apis.
// This struct is an adapter for app.GithubClient.
//
// Search endpoints go through their own doer, wired with a stricter rate
// limit than the standard one.
type Client struct {
	doer         HTTPDoer
	searchDoer   HTTPDoer
	address      string
	authToken    string
	organization string
	l            logrus.FieldLogger

	pageSize         int
	maxSearchResults int
	responseMaxSize  int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
func NewClient(doer, searchDoer HTTPDoer, address, authToken, organization string, l logrus.FieldLogger) *Client {
	return &Client{
		doer:         doer,
		searchDoer:   searchDoer,
		address:      address,
		authToken:    authToken,
		organization: organization,
		l:            l,

		pageSize:         100,
		maxSearchResults: 1000,
		responseMaxSize:  1024 * 1024 * 30,
	}
}

// OrganizationRepositories returns every repository of the organization.
func (c *Client) OrganizationRepositories(ctx context.Context) ([]app.Repository, error) {
	return fetchAllPages[app.Repository](ctx, c, fmt.Sprintf("/orgs/%s/repos", c.organization))
}

// RepositoryByName returns the canonical repository object for a name.
func (c *Client) RepositoryByName(ctx context.Context, name string) (app.Repository, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s", c.organization, name)
	body, err := c.get(ctx, c.doer, endpoint)
	if err != nil {
		return app.Repository{}, err
	}

	var repo app.Repository
	if err := json.Unmarshal(body, &repo); err != nil {
		return app.Repository{}, fmt.Errorf("unmarshalling repository %s: %w", name, err)
	}

	return repo, nil
}

// SearchAuthoredRepositories searches repositories containing items of the
// given type authored by the user.
func (c *Client) SearchAuthoredRepositories(ctx context.Context, username, itemType string, since *time.Time) ([]app.Repository, error) {
	query := buildQuery(c.organization, username, "", itemType, since)
	return searchAllPages[app.Repository](ctx, c, "/search/repositories", query)
}

// SearchContributedRepositoryNames searches issues or pull requests related
// to the user and extracts the unique repository names from the results.
func (c *Client) SearchContributedRepositoryNames(ctx context.Context, username, relation, itemType string, since *time.Time) ([]string, error) {
	query := buildQuery(c.organization, username, relation, itemType, since)
	items, err := searchAllPages[issueSearchItem](ctx, c, "/search/issues", query)
	if err != nil {
		return nil, err
	}

	return repositoryNamesFromSearchItems(items), nil
}

// UserActivityRepositoryNames extracts organization repository names from the
// user's public activity events.
func (c *Client) UserActivityRepositoryNames(ctx context.Context, username string) ([]string, error) {
	events, err := fetchAllPages[activityEvent](ctx, c, fmt.Sprintf("/users/%s/events/public", username))
	if err != nil {
		return nil, err
	}

	return repositoryNamesFromEvents(events, c.organization), nil
}

// Commits returns all commits authored by author.
func (c *Client) Commits(ctx context.Context, repoName, author string, since *time.Time) ([]app.Commit, error) {
	v := make(url.Values)
	v.Set("author", author)
	if since != nil {
		v.Set("since", since.UTC().Format(time.RFC3339))
	}
	endpoint := fmt.Sprintf("/repos/%s/%s/commits?%s", c.organization, repoName, v.Encode())

	return fetchAllPages[app.Commit](ctx, c, endpoint)
}

// Commit returns a single commit, including its line change stats.
func (c *Client) Commit(ctx context.Context, repoName, sha string) (app.Commit, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/commits/%s", c.organization, repoName, sha)
	body, err := c.get(ctx, c.doer, endpoint)
	if err != nil {
		return app.Commit{}, err
	}

	var commit app.Commit
	if err := json.Unmarshal(body, &commit); err != nil {
		return app.Commit{}, fmt.Errorf("unmarshalling commit %s: %w", sha, err)
	}

	return commit, nil
}

// PullRequests returns pull requests created by author. The pulls endpoint
// has no author parameter, so filtering happens client side.
func (c *Client) PullRequests(ctx context.Context, repoName, author string, since *time.Time) ([]app.PullRequest, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/pulls?state=all", c.organization, repoName)
	prs, err := fetchAllPages[app.PullRequest](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}

	out := make([]app.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.User.Login != author {
			continue
		}
		if since != nil && pr.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, pr)
	}

	return out, nil
}

// Reviews returns all reviews of one pull request.
func (c *Client) Reviews(ctx context.Context, repoName string, prNumber int) ([]app.Review, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/pulls/%d/reviews", c.organization, repoName, prNumber)
	return fetchAllPages[app.Review](ctx, c, endpoint)
}

// ReviewComments returns the inline comments of one pull request.
func (c *Client) ReviewComments(ctx context.Context, repoName string, prNumber int) ([]app.ReviewComment, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/pulls/%d/comments", c.organization, repoName, prNumber)
	return fetchAllPages[app.ReviewComment](ctx, c, endpoint)
}

// Issues returns issues matching the filter.
func (c *Client) Issues(ctx context.Context, repoName string, filter app.IssueFilter, since *time.Time) ([]app.Issue, error) {
	v := make(url.Values)
	v.Set("state", "all")
	if filter.Creator != "" {
		v.Set("creator", filter.Creator)
	}
	if filter.Assignee != "" {
		v.Set("assignee", filter.Assignee)
	}
	if since != nil {
		v.Set("since", since.UTC().Format(time.RFC3339))
	}
	endpoint := fmt.Sprintf("/repos/%s/%s/issues?%s", c.organization, repoName, v.Encode())

	return fetchAllPages[app.Issue](ctx, c, endpoint)
}

// PullRequestComments returns the repository's inline pr comments written by
// username. The endpoint has no author parameter, so filtering happens client
// side.
func (c *Client) PullRequestComments(ctx context.Context, repoName, username string, since *time.Time) ([]app.ReviewComment, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/pulls/comments", c.organization, repoName)
	comments, err := fetchAllPages[app.ReviewComment](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}

	out := make([]app.ReviewComment, 0, len(comments))
	for _, comment := range comments {
		if comment.User.Login != username {
			continue
		}
		if since != nil && comment.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, comment)
	}

	return out, nil
}

// IssueComments returns the repository's issue comments written by username.
func (c *Client) IssueComments(ctx context.Context, repoName, username string, since *time.Time) ([]app.Comment, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/issues/comments", c.organization, repoName)
	comments, err := fetchAllPages[app.Comment](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}

	out := make([]app.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.User.Login != username {
			continue
		}
		if since != nil && comment.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, comment)
	}

	return out, nil
}

// get executes an authenticated request and maps the response status to the
// app error taxonomy. Status errors are never retried here.
func (c *Client) get(ctx context.Context, doer HTTPDoer, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.address+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "ic-metrics/1.0")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return body, nil
	case http.StatusUnauthorized:
		return nil, &app.AuthenticationError{Endpoint: endpoint}
	case http.StatusForbidden:
		return nil, &app.RateLimitError{Endpoint: endpoint}
	case http.StatusNotFound:
		return nil, &app.ResourceNotFoundError{Endpoint: endpoint}
	default:
		return nil, &app.APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Body: string(body)}
	}
}
