package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wttj/ic-metrics/internal/app"
)

func snapshotWithCommits(commits ...app.Commit) *app.Snapshot {
	return &app.Snapshot{
		Repositories: map[string]*app.RepositoryContribution{
			"api": {Commits: commits},
		},
	}
}

func commitAt(date time.Time, message string) app.Commit {
	return app.Commit{
		Commit: app.CommitDetail{
			Message: message,
			Author:  app.CommitActor{Date: date},
		},
	}
}

func TestAnalyzeCommits(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) // a Monday

	s := snapshotWithCommits(
		commitAt(base, "feat: add endpoint"),
		commitAt(base.Add(time.Hour), "fix(api): handle nil"),
		commitAt(base.AddDate(0, 0, 1), "wip"),
		commitAt(base.AddDate(0, 0, 1).Add(2*time.Hour), "chore: bump deps"),
	)

	got := AnalyzeCommits(s)

	assert.Equal(t, 4, got.TotalCommits)
	assert.Equal(t, 2, got.ByWeekday["Monday"])
	assert.Equal(t, 2, got.ByWeekday["Tuesday"])
	assert.Equal(t, 2, got.ByHour[9])
	assert.Equal(t, 3, got.ConventionalCommits)
	assert.Equal(t, 75.0, got.ConventionalCommitRate)
	// 4 commits over a 1 day 2 hour span.
	assert.Greater(t, got.AvgCommitsPerDay, 3.0)
}

func TestAnalyzeCommitsEmpty(t *testing.T) {
	t.Parallel()

	got := AnalyzeCommits(snapshotWithCommits())
	assert.Equal(t, CommitStats{}, got)
}

func TestMostActiveHours(t *testing.T) {
	t.Parallel()

	byHour := map[int]int{
		9:  5,
		14: 5,
		10: 3,
		23: 1,
		8:  1,
	}

	// Top three by count, lower hour wins ties.
	assert.Equal(t, []int{9, 14, 10}, mostActiveHours(byHour))
}

func TestConventionalCommitPattern(t *testing.T) {
	t.Parallel()

	matching := []string{
		"feat: thing",
		"fix(parser): edge case",
		"docs: readme",
		"refactor: split package",
		"test: cover filter",
		"chore(deps): bump",
		"style: gofmt",
	}
	for _, msg := range matching {
		assert.True(t, conventionalCommitRe.MatchString(msg), msg)
	}

	notMatching := []string{
		"Add feature",
		"feature: thing",
		"fix missing colon",
		"FEAT: uppercase",
	}
	for _, msg := range notMatching {
		assert.False(t, conventionalCommitRe.MatchString(msg), msg)
	}
}
