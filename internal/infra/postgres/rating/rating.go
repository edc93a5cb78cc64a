package infra_postgres_rating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moviebase/core/internal/model"
	usecase_rating "github.com/moviebase/core/internal/usecase/rating"
)

// Driver keeps movies.rating_sum/rating_count consistent with the ratings
// table. Every mutation runs as one transaction: lock the movie row, change
// the rating row, re-sum all ratings for the movie, write the pair back. The
// lock serializes mutations per movie, so each re-sum sees every committed
// rating and none is lost between interleaved writers.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type ratingDB struct {
	UserID  int64   `db:"user_id"`
	MovieID int64   `db:"movie_id"`
	Score   float64 `db:"score"`
}

func (d *Driver) Upsert(ctx context.Context, rating model.Rating) error {
	return d.inTx(ctx, rating.MovieID, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO ratings (user_id, movie_id, score)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, movie_id) DO UPDATE SET score = EXCLUDED.score
		`
		if _, err := tx.ExecContext(ctx, query, rating.UserID, rating.MovieID, rating.Score); err != nil {
			return fmt.Errorf("failed to upsert rating: %w", err)
		}
		return nil
	})
}

func (d *Driver) Update(ctx context.Context, rating model.Rating) error {
	return d.inTx(ctx, rating.MovieID, func(tx *sqlx.Tx) error {
		query := `
			UPDATE ratings
			SET score = $1
			WHERE user_id = $2 AND movie_id = $3
		`
		result, err := tx.ExecContext(ctx, query, rating.Score, rating.UserID, rating.MovieID)
		if err != nil {
			return fmt.Errorf("failed to update rating: %w", err)
		}
		return requireRow(result)
	})
}

func (d *Driver) Delete(ctx context.Context, userID model.UserID, movieID model.MovieID) error {
	return d.inTx(ctx, movieID, func(tx *sqlx.Tx) error {
		query := `
			DELETE FROM ratings
			WHERE user_id = $1 AND movie_id = $2
		`
		result, err := tx.ExecContext(ctx, query, userID, movieID)
		if err != nil {
			return fmt.Errorf("failed to delete rating: %w", err)
		}
		return requireRow(result)
	})
}

func (d *Driver) ForUserAndMovie(ctx context.Context, userID model.UserID, movieID model.MovieID) (*model.Rating, error) {
	query := `
		SELECT user_id, movie_id, score
		FROM ratings
		WHERE user_id = $1 AND movie_id = $2
	`

	var row ratingDB
	if err := d.db.GetContext(ctx, &row, query, userID, movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load rating: %w", err)
	}

	return &model.Rating{UserID: row.UserID, MovieID: row.MovieID, Score: row.Score}, nil
}

// inTx wraps the row mutation and the aggregate write-back in a single
// transaction so readers never observe one without the other.
func (d *Driver) inTx(ctx context.Context, movieID model.MovieID, mutate func(tx *sqlx.Tx) error) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin rating tx: %w", err)
	}

	if err := lockMovie(ctx, tx, movieID); err != nil {
		tx.Rollback()
		return err
	}

	if err := mutate(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := refreshAggregate(ctx, tx, movieID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rating tx: %w", err)
	}
	return nil
}

// lockMovie takes the movies row lock up front. A transaction that re-sums
// before a concurrent commit becomes visible would write back a stale pair.
func lockMovie(ctx context.Context, tx *sqlx.Tx, movieID model.MovieID) error {
	var id int64

	query := `SELECT id FROM movies WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &id, query, movieID); err != nil {
		return fmt.Errorf("failed to lock movie row: %w", err)
	}
	return nil
}

func refreshAggregate(ctx context.Context, tx *sqlx.Tx, movieID model.MovieID) error {
	var agg struct {
		Sum   float64 `db:"sum"`
		Count int     `db:"count"`
	}

	query := `
		SELECT COALESCE(SUM(score), 0) AS sum, COUNT(*) AS count
		FROM ratings
		WHERE movie_id = $1
	`
	if err := tx.GetContext(ctx, &agg, query, movieID); err != nil {
		return fmt.Errorf("failed to recompute aggregate: %w", err)
	}

	update := `
		UPDATE movies
		SET rating_sum = $1, rating_count = $2
		WHERE id = $3
	`
	if _, err := tx.ExecContext(ctx, update, agg.Sum, agg.Count, movieID); err != nil {
		return fmt.Errorf("failed to store aggregate: %w", err)
	}
	return nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return usecase_rating.ErrRatingNotFound
	}
	return nil
}
