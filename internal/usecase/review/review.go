package usecase_review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/moviebase/core/internal/model"
)

var (
	ErrEmptyText      = errors.New("review text is empty")
	ErrReviewNotFound = errors.New("review not found")
	ErrStoreFailed    = errors.New("review store failed")
)

// Repository mutates review rows. Reviews are independent of the numeric
// aggregate, so there is no write-back step here.
type Repository interface {
	Upsert(ctx context.Context, review model.Review) error
	Update(ctx context.Context, review model.Review) error
	Delete(ctx context.Context, userID model.UserID, movieID model.MovieID) error
	ForUserAndMovie(ctx context.Context, userID model.UserID, movieID model.MovieID) (*model.Review, error)
	RecentForMovie(ctx context.Context, movieID model.MovieID, limit int) ([]model.Review, error)
}

type Usecase struct {
	repository Repository
	logger     *slog.Logger
}

func New(repository Repository, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{repository: repository, logger: logger}
}

func (u *Usecase) UpsertReview(ctx context.Context, review model.Review) error {
	if strings.TrimSpace(review.Text) == "" {
		return ErrEmptyText
	}
	if err := u.repository.Upsert(ctx, review); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}
	return nil
}

func (u *Usecase) UpdateReview(ctx context.Context, review model.Review) error {
	if strings.TrimSpace(review.Text) == "" {
		return ErrEmptyText
	}
	if err := u.repository.Update(ctx, review); err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}
	return nil
}

func (u *Usecase) DeleteReview(ctx context.Context, userID model.UserID, movieID model.MovieID) error {
	if err := u.repository.Delete(ctx, userID, movieID); err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}
	return nil
}

// ReviewFor returns the user's review for a movie, (nil, nil)-style on absence.
func (u *Usecase) ReviewFor(ctx context.Context, userID model.UserID, movieID model.MovieID) *model.Review {
	review, err := u.repository.ForUserAndMovie(ctx, userID, movieID)
	if err != nil {
		u.logger.Error("review lookup failed",
			slog.Int64("user_id", userID),
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return review
}

// RecentForMovie lists the newest reviews for a movie's detail view. Read
// errors degrade to an empty list.
func (u *Usecase) RecentForMovie(ctx context.Context, movieID model.MovieID, limit int) []model.Review {
	reviews, err := u.repository.RecentForMovie(ctx, movieID, limit)
	if err != nil {
		u.logger.Error("recent reviews fetch failed",
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		return []model.Review{}
	}
	return reviews
}
