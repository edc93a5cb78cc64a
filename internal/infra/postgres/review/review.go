package infra_postgres_review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/moviebase/core/internal/model"
	usecase_review "github.com/moviebase/core/internal/usecase/review"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type reviewDB struct {
	UserID    int64     `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *reviewDB) ToDomain() model.Review {
	return model.Review{
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Text:      r.Body,
		CreatedAt: r.CreatedAt,
	}
}

func (d *Driver) Upsert(ctx context.Context, review model.Review) error {
	query := `
		INSERT INTO reviews (user_id, movie_id, body, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, movie_id) DO UPDATE SET body = EXCLUDED.body, created_at = now()
	`

	if _, err := d.db.ExecContext(ctx, query, review.UserID, review.MovieID, review.Text); err != nil {
		return fmt.Errorf("failed to upsert review: %w", err)
	}
	return nil
}

func (d *Driver) Update(ctx context.Context, review model.Review) error {
	query := `
		UPDATE reviews
		SET body = $1, created_at = now()
		WHERE user_id = $2 AND movie_id = $3
	`

	result, err := d.db.ExecContext(ctx, query, review.Text, review.UserID, review.MovieID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return requireRow(result)
}

func (d *Driver) Delete(ctx context.Context, userID model.UserID, movieID model.MovieID) error {
	query := `
		DELETE FROM reviews
		WHERE user_id = $1 AND movie_id = $2
	`

	result, err := d.db.ExecContext(ctx, query, userID, movieID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return requireRow(result)
}

func (d *Driver) ForUserAndMovie(ctx context.Context, userID model.UserID, movieID model.MovieID) (*model.Review, error) {
	query := `
		SELECT user_id, movie_id, body, created_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
	`

	var row reviewDB
	if err := d.db.GetContext(ctx, &row, query, userID, movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}

	review := row.ToDomain()
	return &review, nil
}

func (d *Driver) RecentForMovie(ctx context.Context, movieID model.MovieID, limit int) ([]model.Review, error) {
	query := `
		SELECT user_id, movie_id, body, created_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []reviewDB
	if err := d.db.SelectContext(ctx, &rows, query, movieID, limit); err != nil {
		return nil, fmt.Errorf("failed to load reviews for movie: %w", err)
	}

	reviews := make([]model.Review, len(rows))
	for i := range rows {
		reviews[i] = rows[i].ToDomain()
	}
	return reviews, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return usecase_review.ErrReviewNotFound
	}
	return nil
}
