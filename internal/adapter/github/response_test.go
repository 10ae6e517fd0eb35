package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryNamesFromSearchItems(t *testing.T) {
	t.Parallel()

	items := []issueSearchItem{
		{RepositoryURL: "https://api.github.com/repos/acme/api"},
		{RepositoryURL: "https://api.github.com/repos/acme/web"},
		{RepositoryURL: "https://api.github.com/repos/acme/api"},
		{RepositoryURL: ""},
		{RepositoryURL: "https://api.github.com/repos/acme/"},
	}

	got := repositoryNamesFromSearchItems(items)
	assert.Equal(t, []string{"api", "web"}, got)
}

func TestRepositoryNamesFromEvents(t *testing.T) {
	t.Parallel()

	events := []activityEvent{
		{Repo: activityEventRepo{Name: "acme/api"}},
		{Repo: activityEventRepo{Name: "other/api"}},
		{Repo: activityEventRepo{Name: "acme/web"}},
		{Repo: activityEventRepo{Name: "acme/api"}},
		{Repo: activityEventRepo{Name: "acme/"}},
	}

	got := repositoryNamesFromEvents(events, "acme")
	assert.Equal(t, []string{"api", "web"}, got)
}
