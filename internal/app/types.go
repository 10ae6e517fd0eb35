package app

import "time"

// Repository identifies a github repository discovered for a developer.
// The platform-assigned id is the authoritative deduplication key.
type Repository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// Actor is a github user reference attached to contribution records.
type Actor struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// CommitActor is the author or committer block of a commit.
type CommitActor struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// CommitDetail is the nested "commit" object of a commit record.
type CommitDetail struct {
	Message   string      `json:"message"`
	Author    CommitActor `json:"author"`
	Committer CommitActor `json:"committer"`
}

// CommitStats holds per-commit line change counts. Only present when the
// commit was fetched individually, the list endpoint omits them.
type CommitStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Total     int `json:"total"`
}

// Commit record as returned by the repository commits endpoint.
type Commit struct {
	SHA     string       `json:"sha"`
	Commit  CommitDetail `json:"commit"`
	Author  *Actor       `json:"author,omitempty"`
	Stats   *CommitStats `json:"stats,omitempty"`
	HTMLURL string       `json:"html_url,omitempty"`
}

// PullRequest record.
type PullRequest struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	Body      string     `json:"body"`
	User      Actor      `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
	MergedAt  *time.Time `json:"merged_at"`
	ClosedAt  *time.Time `json:"closed_at"`
	Additions int        `json:"additions"`
	Deletions int        `json:"deletions"`
}

// Review record, scoped to one pull request.
type Review struct {
	ID          int64     `json:"id"`
	User        Actor     `json:"user"`
	Body        string    `json:"body"`
	State       string    `json:"state"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ReviewComment is an inline pull request comment. It references its parent
// review through PullRequestReviewID.
type ReviewComment struct {
	ID                  int64     `json:"id"`
	PullRequestReviewID int64     `json:"pull_request_review_id"`
	User                Actor     `json:"user"`
	Body                string    `json:"body"`
	Path                string    `json:"path,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// Issue record.
type Issue struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	Body      string     `json:"body"`
	User      Actor      `json:"user"`
	Assignee  *Actor     `json:"assignee,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at"`
}

// Comment is an issue comment.
type Comment struct {
	ID        int64     `json:"id"`
	User      Actor     `json:"user"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	HTMLURL   string    `json:"html_url,omitempty"`
}
