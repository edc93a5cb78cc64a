package model

const (
	MinScore = 0.0
	MaxScore = 5.0
)

// Rating is one user's score for one movie. Scores are fractional; the
// composite (UserID, MovieID) key allows a single row per pair.
type Rating struct {
	UserID  UserID
	MovieID MovieID
	Score   float64
}
