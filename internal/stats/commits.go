package stats

import (
	"regexp"
	"sort"
	"time"

	"github.com/wttj/ic-metrics/internal/app"
)

// CommitStats describes commit patterns across all repositories of a
// snapshot.
type CommitStats struct {
	TotalCommits           int            `json:"total_commits"`
	AvgCommitsPerDay       float64        `json:"avg_commits_per_day"`
	ByWeekday              map[string]int `json:"by_day_of_week"`
	ByHour                 map[int]int    `json:"by_hour"`
	MostActiveHours        []int          `json:"most_active_hours"`
	AvgMessageLength       float64        `json:"avg_message_length"`
	ConventionalCommits    int            `json:"conventional_commits"`
	ConventionalCommitRate float64        `json:"conventional_commit_percentage"`
}

const topActiveHours = 3

var conventionalCommitRe = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore)(\(.+\))?:`)

// AnalyzeCommits computes commit pattern statistics.
func AnalyzeCommits(snapshot *app.Snapshot) CommitStats {
	var commits []app.Commit
	for _, rc := range snapshot.Repositories {
		commits = append(commits, rc.Commits...)
	}
	if len(commits) == 0 {
		return CommitStats{}
	}

	dates := make([]time.Time, 0, len(commits))
	byWeekday := make(map[string]int)
	byHour := make(map[int]int)
	var messageLength int
	var conventional int
	for _, c := range commits {
		date := c.Commit.Author.Date
		dates = append(dates, date)
		byWeekday[date.Weekday().String()]++
		byHour[date.Hour()]++
		messageLength += len(c.Commit.Message)
		if conventionalCommitRe.MatchString(c.Commit.Message) {
			conventional++
		}
	}

	return CommitStats{
		TotalCommits:           len(commits),
		AvgCommitsPerDay:       round2(float64(len(commits)) / durationDays(dates)),
		ByWeekday:              byWeekday,
		ByHour:                 byHour,
		MostActiveHours:        mostActiveHours(byHour),
		AvgMessageLength:       round2(float64(messageLength) / float64(len(commits))),
		ConventionalCommits:    conventional,
		ConventionalCommitRate: percentage(conventional, len(commits)),
	}
}

func mostActiveHours(byHour map[int]int) []int {
	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if byHour[hours[i]] != byHour[hours[j]] {
			return byHour[hours[i]] > byHour[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > topActiveHours {
		hours = hours[:topActiveHours]
	}

	return hours
}
