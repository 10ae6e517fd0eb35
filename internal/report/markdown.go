// Package report renders a human readable markdown report from a computed
// analysis.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/wttj/ic-metrics/internal/stats"
)

// Markdown renders the analysis as a markdown document.
func Markdown(analysis *stats.Analysis, organization string) string {
	var b strings.Builder

	b.WriteString("# Developer Contribution Analysis Report\n\n")
	fmt.Fprintf(&b, "**Developer**: %s\n", analysis.Developer)
	fmt.Fprintf(&b, "**Organization**: %s\n", organization)
	fmt.Fprintf(&b, "**Analysis Date**: %s\n\n", analysis.AnalyzedAt.Format(time.RFC3339))

	if analysis.Period.From != nil {
		fmt.Fprintf(&b, "**Activity Period**: %s to %s\n",
			analysis.Period.From.Format(time.RFC3339),
			analysis.Period.To.Format(time.RFC3339))
		fmt.Fprintf(&b, "**Duration**: %d days\n\n", analysis.Period.DurationDays)
	}

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- **Total Commits**: %d\n", analysis.Summary.TotalCommits)
	fmt.Fprintf(&b, "- **Total Pull Requests**: %d\n", analysis.Summary.TotalPRs)
	fmt.Fprintf(&b, "- **Total Reviews**: %d\n", analysis.Summary.TotalReviews)
	fmt.Fprintf(&b, "- **Total Issues**: %d\n", analysis.Summary.TotalIssues)
	fmt.Fprintf(&b, "- **Total PR Comments**: %d\n", analysis.Summary.TotalPRComments)
	fmt.Fprintf(&b, "- **Total Issue Comments**: %d\n\n", analysis.Summary.TotalIssueComments)

	b.WriteString("## Activity by Repository\n")
	for _, repo := range analysis.Activity {
		fmt.Fprintf(&b, "- **%s**: %d total activities\n", repo.Repository, repo.TotalActivity)
	}
	b.WriteString("\n")

	b.WriteString("## Recommendations\n")
	for _, r := range analysis.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	return b.String()
}
