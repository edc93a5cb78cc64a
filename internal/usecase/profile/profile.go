package usecase_profile

import (
	"context"
	"log/slog"
	"sort"

	"github.com/moviebase/core/internal/model"
)

// Repository supplies the two already-disjoint halves of a user's feed:
// every rated movie (with review text when one exists), and every movie the
// user reviewed without rating.
type Repository interface {
	RatedMovies(ctx context.Context, userID model.UserID) ([]model.FeedEntry, error)
	ReviewedOnlyMovies(ctx context.Context, userID model.UserID) ([]model.FeedEntry, error)
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

// Feed returns the user's unified ratings+reviews feed: rated movies first,
// highest score first, then review-only movies newest first. Store failures
// degrade to an empty feed.
func (u *Usecase) Feed(ctx context.Context, userID model.UserID) []model.FeedEntry {
	rated, err := u.repository.RatedMovies(ctx, userID)
	if err != nil {
		u.logger.Error("rated feed fetch failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return []model.FeedEntry{}
	}

	reviewedOnly, err := u.repository.ReviewedOnlyMovies(ctx, userID)
	if err != nil {
		u.logger.Error("review-only feed fetch failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return []model.FeedEntry{}
	}

	return Merge(rated, reviewedOnly)
}

// Merge implements the two-tier ordering by sorting each group with its own
// comparator and concatenating rated-first. The groups are disjoint by
// construction; Merge does not re-check that.
func Merge(rated, reviewedOnly []model.FeedEntry) []model.FeedEntry {
	sort.SliceStable(rated, func(i, j int) bool {
		return score(rated[i]) > score(rated[j])
	})
	sort.SliceStable(reviewedOnly, func(i, j int) bool {
		return reviewedAt(reviewedOnly[i]) > reviewedAt(reviewedOnly[j])
	})

	feed := make([]model.FeedEntry, 0, len(rated)+len(reviewedOnly))
	feed = append(feed, rated...)
	feed = append(feed, reviewedOnly...)
	return feed
}

func score(e model.FeedEntry) float64 {
	if e.Rating == nil {
		return 0
	}
	return *e.Rating
}

func reviewedAt(e model.FeedEntry) int64 {
	if e.ReviewedAt == nil {
		return 0
	}
	return e.ReviewedAt.UnixNano()
}
