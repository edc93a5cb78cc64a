package usecase_rating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moviebase/core/internal/model"
)

var (
	ErrInvalidScore   = errors.New("score out of range")
	ErrRatingNotFound = errors.New("rating not found")
	ErrStoreFailed    = errors.New("rating store failed")
)

// Repository is the transactional aggregate maintainer. Each mutation runs
// the row change and the sum/count write-back as one unit; a failure anywhere
// rolls back the whole thing.
type Repository interface {
	Upsert(ctx context.Context, rating model.Rating) error
	Update(ctx context.Context, rating model.Rating) error
	Delete(ctx context.Context, userID model.UserID, movieID model.MovieID) error
	ForUserAndMovie(ctx context.Context, userID model.UserID, movieID model.MovieID) (*model.Rating, error)
}

// Invalidator drops cached movie rows whose aggregate just changed. Cache
// trouble never fails a write.
type Invalidator interface {
	Invalidate(movieID model.MovieID)
}

type Usecase struct {
	repository  Repository
	invalidator Invalidator
	logger      *slog.Logger
}

func New(repository Repository, invalidator Invalidator, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{repository: repository, invalidator: invalidator, logger: logger}
}

// UpsertRating inserts or replaces the user's score for the movie. The score
// is validated before any write; out-of-range is rejected, never clamped.
func (u *Usecase) UpsertRating(ctx context.Context, rating model.Rating) error {
	if err := validateScore(rating.Score); err != nil {
		return err
	}

	if err := u.repository.Upsert(ctx, rating); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	u.invalidate(rating.MovieID)
	return nil
}

// UpdateRating changes an existing score. Unlike UpsertRating it fails with
// ErrRatingNotFound when no row exists; it never inserts.
func (u *Usecase) UpdateRating(ctx context.Context, rating model.Rating) error {
	if err := validateScore(rating.Score); err != nil {
		return err
	}

	if err := u.repository.Update(ctx, rating); err != nil {
		if errors.Is(err, ErrRatingNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	u.invalidate(rating.MovieID)
	return nil
}

// DeleteRating removes the user's score; the aggregate write-back in the same
// transaction brings an unrated movie back to sum 0, count 0.
func (u *Usecase) DeleteRating(ctx context.Context, userID model.UserID, movieID model.MovieID) error {
	if err := u.repository.Delete(ctx, userID, movieID); err != nil {
		if errors.Is(err, ErrRatingNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	u.invalidate(movieID)
	return nil
}

// RatingFor is a read helper for detail views; absence is (nil, nil).
func (u *Usecase) RatingFor(ctx context.Context, userID model.UserID, movieID model.MovieID) *model.Rating {
	rating, err := u.repository.ForUserAndMovie(ctx, userID, movieID)
	if err != nil {
		u.logger.Error("rating lookup failed",
			slog.Int64("user_id", userID),
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return rating
}

func (u *Usecase) invalidate(movieID model.MovieID) {
	if u.invalidator != nil {
		u.invalidator.Invalidate(movieID)
	}
}

func validateScore(score float64) error {
	if score < model.MinScore || score > model.MaxScore {
		return fmt.Errorf("%w: %.2f not in [%.0f, %.0f]", ErrInvalidScore, score, model.MinScore, model.MaxScore)
	}
	return nil
}
