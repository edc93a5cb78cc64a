package model

import "time"

type FeedEntryKind string

const (
	FeedEntryRating FeedEntryKind = "rating"
	FeedEntryReview FeedEntryKind = "review"
)

// FeedEntry is one row of a user's profile feed. Rated movies carry a score
// and optionally the review text; review-only movies carry text and the
// review timestamp. Ratings have no timestamp in the base schema.
type FeedEntry struct {
	MovieID    MovieID
	Title      string
	Rating     *float64
	ReviewText *string
	ReviewedAt *time.Time
}

func (e FeedEntry) Kind() FeedEntryKind {
	if e.Rating != nil {
		return FeedEntryRating
	}
	return FeedEntryReview
}
