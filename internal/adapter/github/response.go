package github

import "strings"

// issueSearchItem is one result of the issue search api. Only the repository
// reference is relevant for discovery.
type issueSearchItem struct {
	RepositoryURL string `json:"repository_url"`
}

// activityEvent is one entry of a user's public event stream.
type activityEvent struct {
	Repo activityEventRepo `json:"repo"`
}

type activityEventRepo struct {
	// Name is the full "org/name" form.
	Name string `json:"name"`
}

// repositoryNamesFromSearchItems extracts unique repository names from issue
// search results, preserving result order.
func repositoryNamesFromSearchItems(items []issueSearchItem) []string {
	seen := make(map[string]bool, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		idx := strings.LastIndex(item.RepositoryURL, "/")
		if idx < 0 || idx == len(item.RepositoryURL)-1 {
			continue
		}
		name := item.RepositoryURL[idx+1:]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}

// repositoryNamesFromEvents extracts unique repository names scoped to the
// organization from activity events.
func repositoryNamesFromEvents(events []activityEvent, organization string) []string {
	prefix := organization + "/"
	seen := make(map[string]bool, len(events))
	names := make([]string, 0, len(events))
	for _, event := range events {
		if !strings.HasPrefix(event.Repo.Name, prefix) {
			continue
		}
		name := strings.TrimPrefix(event.Repo.Name, prefix)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}
