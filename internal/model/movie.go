package model

import "time"

type MovieID = int64

type UserID = int64

// Movie carries the denormalized rating aggregate alongside catalog metadata.
// RatingSum and RatingCount are never edited directly; they are rewritten from
// the ratings table by the rating driver on every rating mutation.
type Movie struct {
	ID          MovieID
	Title       string
	Overview    string
	PosterURL   string
	ReleaseDate time.Time
	Runtime     int
	RatingSum   float64
	RatingCount int

	Genres []string
}

func (m Movie) AverageRating() float64 {
	if m.RatingCount == 0 {
		return 0
	}
	return m.RatingSum / float64(m.RatingCount)
}
