package infra_postgres_profile

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/moviebase/core/internal/model"
)

// Driver produces the two disjoint halves of a profile feed. Exclusivity is
// enforced here by the queries; the merger only orders.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type feedRowDB struct {
	MovieID    int64      `db:"movie_id"`
	Title      string     `db:"title"`
	Score      *float64   `db:"score"`
	Body       *string    `db:"body"`
	ReviewedAt *time.Time `db:"reviewed_at"`
}

func (r *feedRowDB) ToDomain() model.FeedEntry {
	return model.FeedEntry{
		MovieID:    r.MovieID,
		Title:      r.Title,
		Rating:     r.Score,
		ReviewText: r.Body,
		ReviewedAt: r.ReviewedAt,
	}
}

// RatedMovies returns every rating the user left, with the review text
// attached when the same movie also carries one. Ratings have no timestamp
// in the schema, so reviewed_at is only set from the joined review.
func (d *Driver) RatedMovies(ctx context.Context, userID model.UserID) ([]model.FeedEntry, error) {
	query := `
		SELECT r.movie_id, m.title, r.score, rv.body, rv.created_at AS reviewed_at
		FROM ratings r
		JOIN movies m ON m.id = r.movie_id
		LEFT JOIN reviews rv ON rv.user_id = r.user_id AND rv.movie_id = r.movie_id
		WHERE r.user_id = $1
	`
	return d.feedRows(ctx, query, userID)
}

// ReviewedOnlyMovies returns reviews for movies the same user never rated.
func (d *Driver) ReviewedOnlyMovies(ctx context.Context, userID model.UserID) ([]model.FeedEntry, error) {
	query := `
		SELECT rv.movie_id, m.title, NULL::double precision AS score, rv.body, rv.created_at AS reviewed_at
		FROM reviews rv
		JOIN movies m ON m.id = rv.movie_id
		LEFT JOIN ratings r ON r.user_id = rv.user_id AND r.movie_id = rv.movie_id
		WHERE rv.user_id = $1 AND r.movie_id IS NULL
	`
	return d.feedRows(ctx, query, userID)
}

func (d *Driver) feedRows(ctx context.Context, query string, userID model.UserID) ([]model.FeedEntry, error) {
	var rows []feedRowDB
	if err := d.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load feed rows: %w", err)
	}

	entries := make([]model.FeedEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].ToDomain()
	}
	return entries, nil
}
