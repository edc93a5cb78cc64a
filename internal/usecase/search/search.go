package usecase_search

import (
	"context"
	"log/slog"

	"github.com/moviebase/core/internal/model"
)

const (
	// DefaultLimit applies when a caller passes a non-positive limit.
	DefaultLimit = 20
	// fullTextMinTermLen is the shortest term the ranked index handles well;
	// anything shorter goes through the substring scan.
	fullTextMinTermLen = 4
	// fullTextCeiling bounds the ranked result set before in-memory paging.
	fullTextCeiling = 50
)

type Strategy string

const (
	StrategyFullText  Strategy = "fulltext"
	StrategySubstring Strategy = "substring"
)

type Repository interface {
	SearchRanked(ctx context.Context, term string, limit int) ([]*model.Movie, error)
	SearchFiltered(ctx context.Context, f Filters, limit, offset int) ([]*model.Movie, error)
	CountFiltered(ctx context.Context, f Filters) (int, error)
}

type Result struct {
	Movies   []*model.Movie
	Total    int
	Strategy Strategy
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

// Decide picks the query strategy. Full-text requires a term of at least four
// characters and no secondary filter; every other combination composes the
// substring predicate.
func Decide(f Filters) Strategy {
	f = f.Normalized()
	if f.Term != nil && len(*f.Term) >= fullTextMinTermLen && !f.hasSecondary() {
		return StrategyFullText
	}
	return StrategySubstring
}

// Search runs one dispatch. Zero filters yield an empty result rather than a
// full scan; browsing the whole catalog goes through the paginated home path.
// Store failures degrade to an empty result; a failed search and an empty
// search are indistinguishable here on purpose.
func (u *Usecase) Search(ctx context.Context, f Filters, offset, limit int) Result {
	f = f.Normalized()
	if f.Empty() {
		return Result{Movies: []*model.Movie{}, Strategy: StrategySubstring}
	}

	offset, limit = clampPaging(offset, limit)

	if Decide(f) == StrategyFullText {
		return u.searchRanked(ctx, *f.Term, offset, limit)
	}
	return u.searchFiltered(ctx, f, offset, limit)
}

// SearchSubstring forces the substring strategy. Callers use it to retry a
// full-text search that ranked zero rows.
func (u *Usecase) SearchSubstring(ctx context.Context, f Filters, offset, limit int) Result {
	f = f.Normalized()
	if f.Empty() {
		return Result{Movies: []*model.Movie{}, Strategy: StrategySubstring}
	}
	offset, limit = clampPaging(offset, limit)
	return u.searchFiltered(ctx, f, offset, limit)
}

// Count mirrors Search's branch rule and predicate exactly so totals stay
// consistent with pages.
func (u *Usecase) Count(ctx context.Context, f Filters) int {
	f = f.Normalized()
	if f.Empty() {
		return 0
	}

	if Decide(f) == StrategyFullText {
		movies, err := u.repository.SearchRanked(ctx, *f.Term, fullTextCeiling)
		if err != nil {
			u.logger.Error("ranked count failed", slog.String("error", err.Error()))
			return 0
		}
		return len(movies)
	}

	total, err := u.repository.CountFiltered(ctx, f)
	if err != nil {
		u.logger.Error("filtered count failed", slog.String("error", err.Error()))
		return 0
	}
	return total
}

func (u *Usecase) searchRanked(ctx context.Context, term string, offset, limit int) Result {
	movies, err := u.repository.SearchRanked(ctx, term, fullTextCeiling)
	if err != nil {
		u.logger.Error("ranked search failed",
			slog.String("term", term),
			slog.String("error", err.Error()),
		)
		return Result{Movies: []*model.Movie{}, Strategy: StrategyFullText}
	}

	total := len(movies)
	if offset >= total {
		return Result{Movies: []*model.Movie{}, Total: total, Strategy: StrategyFullText}
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return Result{Movies: movies[offset:end], Total: total, Strategy: StrategyFullText}
}

func (u *Usecase) searchFiltered(ctx context.Context, f Filters, offset, limit int) Result {
	total, err := u.repository.CountFiltered(ctx, f)
	if err != nil {
		u.logger.Error("filtered count failed", slog.String("error", err.Error()))
		return Result{Movies: []*model.Movie{}, Strategy: StrategySubstring}
	}

	movies, err := u.repository.SearchFiltered(ctx, f, limit, offset)
	if err != nil {
		u.logger.Error("filtered search failed", slog.String("error", err.Error()))
		return Result{Movies: []*model.Movie{}, Strategy: StrategySubstring}
	}
	if movies == nil {
		movies = []*model.Movie{}
	}
	return Result{Movies: movies, Total: total, Strategy: StrategySubstring}
}

func clampPaging(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return offset, limit
}
