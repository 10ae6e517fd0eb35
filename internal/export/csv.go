// Package export flattens a contribution snapshot into CSV files, one per
// record kind plus a key/value summary file.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wttj/ic-metrics/internal/app"
)

// Exporter writes CSV exports of a snapshot into a directory.
type Exporter struct {
	outputDir string

	l log.FieldLogger
}

// NewExporter creates an Exporter writing into outputDir.
func NewExporter(outputDir string, l log.FieldLogger) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		l:         l.WithField("component", "csvExporter"),
	}
}

// Export writes all CSV files for the snapshot and returns the paths of the
// written files.
func (e *Exporter) Export(snapshot *app.Snapshot) ([]string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	writers := []struct {
		name  string
		write func(*csv.Writer, *app.Snapshot) error
	}{
		{"commits.csv", e.writeCommits},
		{"pull_requests.csv", e.writePullRequests},
		{"reviews.csv", e.writeReviews},
		{"issues.csv", e.writeIssues},
		{"pr_comments.csv", e.writePRComments},
		{"issue_comments.csv", e.writeIssueComments},
		{"summary.csv", e.writeSummary},
	}

	paths := make([]string, 0, len(writers))
	for _, w := range writers {
		path := filepath.Join(e.outputDir, w.name)
		if err := e.writeFile(path, snapshot, w.write); err != nil {
			return nil, fmt.Errorf("exporting %s: %w", w.name, err)
		}
		e.l.WithField("file", path).Debug("csv file written")
		paths = append(paths, path)
	}

	return paths, nil
}

func (e *Exporter) writeFile(path string, snapshot *app.Snapshot, write func(*csv.Writer, *app.Snapshot) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w, snapshot); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return f.Close()
}

// sortedRepositoryNames keeps exports deterministic across runs.
func sortedRepositoryNames(snapshot *app.Snapshot) []string {
	names := make([]string, 0, len(snapshot.Repositories))
	for name := range snapshot.Repositories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (e *Exporter) writeCommits(w *csv.Writer, snapshot *app.Snapshot) error {
	header := []string{
		"repository", "sha", "message",
		"author_name", "author_email", "author_date",
		"committer_name", "committer_email", "committer_date",
		"additions", "deletions", "total_changes", "url",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, name := range sortedRepositoryNames(snapshot) {
		for _, c := range snapshot.Repositories[name].Commits {
			var additions, deletions, total int
			if c.Stats != nil {
				additions, deletions, total = c.Stats.Additions, c.Stats.Deletions, c.Stats.Total
			}
			record := []string{
				name, c.SHA, flattenText(c.Commit.Message),
				c.Commit.Author.Name, c.Commit.Author.Email, formatTime(c.Commit.Author.Date),
				c.Commit.Committer.Name, c.Commit.Committer.Email, formatTime(c.Commit.Committer.Date),
				strconv.Itoa(additions), strconv.Itoa(deletions), strconv.Itoa(total), c.HTMLURL,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Exporter) writePullRequests(w *csv.Writer, snapshot *app.Snapshot) error {
	header := []string{
		"repository", "number", "title", "body", "state",
		"created_at", "closed_at", "merged_at",
		"additions", "deletions",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, name := range sortedRepositoryNames(snapshot) {
		for _, pr := range snapshot.Repositories[name].PullRequests {
			record := []string{
				name, strconv.Itoa(pr.Number), pr.Title, flattenText(pr.Body), pr.State,
				formatTime(pr.CreatedAt), formatTimePtr(pr.ClosedAt), formatTimePtr(pr.MergedAt),
				strconv.Itoa(pr.Additions), strconv.Itoa(pr.Deletions),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Exporter) writeReviews(w *csv.Writer, snapshot *app.Snapshot) error {
	header := []string{"repository", "review_id", "state", "body", "submitted_at"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, name := range sortedRepositoryNames(snapshot) {
		for _, r := range snapshot.Repositories[name].Reviews {
			record := []string{
				name, strconv.FormatInt(r.ID, 10), r.State,
				flattenText(r.Body), formatTime(r.SubmittedAt),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Exporter) writeIssues(w *csv.Writer, snapshot *app.Snapshot) error {
	header := []string{
		"repository", "number", "title", "body", "state",
		"created_at", "closed_at", "assignee",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, name := range sortedRepositoryNames(snapshot) {
		for _, issue := range snapshot.Repositories[name].Issues {
			var assignee string
			if issue.Assignee != nil {
				assignee = issue.Assignee.Login
			}
			record := []string{
				name, strconv.Itoa(issue.Number), issue.Title, flattenText(issue.Body), issue.State,
				formatTime(issue.CreatedAt), formatTimePtr(issue.ClosedAt), assignee,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Exporter) writePRComments(w *csv.Writer, snapshot *app.Snapshot) error {
	header := []string{
		"repository", "comment_id", "review_id", "body", "path", "created_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, name := range sortedRepositoryNames(snapshot) {
		for _, c := range snapshot.Repositories[name].PRComments {
			record := []string{
				name, strconv.FormatInt(c.ID, 10), strconv.FormatInt(c.PullRequestReviewID, 10),
				flattenText(c.Body), c.Path, formatTime(c.CreatedAt),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Exporter) writeIssueComments(w *csv.Writer, snapshot *app.Snapshot) error {
	header := []string{"repository", "comment_id", "body", "created_at", "url"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, name := range sortedRepositoryNames(snapshot) {
		for _, c := range snapshot.Repositories[name].IssueComments {
			record := []string{
				name, strconv.FormatInt(c.ID, 10),
				flattenText(c.Body), formatTime(c.CreatedAt), c.HTMLURL,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Exporter) writeSummary(w *csv.Writer, snapshot *app.Snapshot) error {
	rows := [][]string{
		{"metric", "value"},
		{"developer", snapshot.Developer},
		{"organization", snapshot.Organization},
		{"collected_at", formatTime(snapshot.CollectedAt)},
		{"total_commits", strconv.Itoa(snapshot.Summary.TotalCommits)},
		{"total_prs", strconv.Itoa(snapshot.Summary.TotalPRs)},
		{"total_reviews", strconv.Itoa(snapshot.Summary.TotalReviews)},
		{"total_issues", strconv.Itoa(snapshot.Summary.TotalIssues)},
		{"total_pr_comments", strconv.Itoa(snapshot.Summary.TotalPRComments)},
		{"total_issue_comments", strconv.Itoa(snapshot.Summary.TotalIssueComments)},
		{"repositories", strconv.Itoa(len(snapshot.Repositories))},
	}

	return w.WriteAll(rows)
}

// flattenText strips newlines so multi-line bodies stay on one CSV row even
// for consumers that do not honor quoted fields.
func flattenText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return formatTime(*t)
}
