package app

import "strings"

// reviewCommentSeparator joins inline comment bodies backfilled into a review.
const reviewCommentSeparator = "\n---\n"

// EnrichReviews backfills review bodies from their inline comments.
//
// Github often returns an empty body for reviews in state COMMENTED: the text
// lives in per-line comment records that reference the review id. Reviews
// with a non-empty body are left untouched.
func EnrichReviews(reviews []Review, comments []ReviewComment) []Review {
	if len(reviews) == 0 || len(comments) == 0 {
		return reviews
	}

	bodiesByReview := make(map[int64][]string)
	for _, c := range comments {
		if c.Body == "" {
			continue
		}
		bodiesByReview[c.PullRequestReviewID] = append(bodiesByReview[c.PullRequestReviewID], c.Body)
	}

	for i := range reviews {
		review := &reviews[i]
		if strings.TrimSpace(review.Body) != "" || review.State != "COMMENTED" {
			continue
		}
		if bodies := bodiesByReview[review.ID]; len(bodies) > 0 {
			review.Body = strings.Join(bodies, reviewCommentSeparator)
		}
	}

	return reviews
}
