package github

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		organization string
		username     string
		relation     string
		itemType     string
		since        *time.Time
		want         string
	}{
		{
			name:         "code authored, no since",
			organization: "acme",
			username:     "jane",
			want:         "org:acme author:jane",
		},
		{
			name:         "authored prs with since",
			organization: "acme",
			username:     "jane",
			itemType:     "pr",
			since:        &since,
			want:         "org:acme author:jane type:pr created:>=2024-03-01",
		},
		{
			name:         "reviewed prs",
			organization: "acme",
			username:     "jane",
			relation:     "reviewed-by",
			itemType:     "pr",
			want:         "org:acme reviewed-by:jane type:pr",
		},
		{
			name:         "commented issues with since",
			organization: "acme",
			username:     "jane",
			relation:     "commenter",
			itemType:     "issue",
			since:        &since,
			want:         "org:acme commenter:jane type:issue created:>=2024-03-01",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildQuery(tt.organization, tt.username, tt.relation, tt.itemType, tt.since)
			assert.Equal(t, tt.want, got)
		})
	}
}
