package github

import (
	"strings"
	"time"
)

const searchDateLayout = "2006-01-02"

// buildQuery constructs a github search query from semantic parameters,
// following the search grammar of space separated key:value qualifiers.
//
// An empty relation means the user is the author. An empty itemType omits the
// type qualifier, which searches code for the repository search endpoint.
func buildQuery(organization, username, relation, itemType string, since *time.Time) string {
	parts := []string{"org:" + organization}

	if relation == "" {
		relation = "author"
	}
	parts = append(parts, relation+":"+username)

	if itemType != "" {
		parts = append(parts, "type:"+itemType)
	}
	if since != nil {
		parts = append(parts, "created:>="+since.Format(searchDateLayout))
	}

	return strings.Join(parts, " ")
}
