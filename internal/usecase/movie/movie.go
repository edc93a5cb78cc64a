package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moviebase/core/internal/model"
	"github.com/moviebase/core/internal/service/pagination"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrLoadFailed    = errors.New("failed to load movie")
)

const (
	// HomeMaxPages caps how deep the home listing paginates.
	HomeMaxPages = 10
	// recentReviewLimit bounds the review strip on a detail view.
	recentReviewLimit = 3

	directorJob = "Director"
)

type Repository interface {
	PageByRecency(ctx context.Context, limit, offset int) ([]*model.Movie, error)
	Count(ctx context.Context) (int, error)
	ByID(ctx context.Context, id model.MovieID) (*model.Movie, error)
	AvailableYears(ctx context.Context) ([]int, error)
}

type GenreRepository interface {
	All(ctx context.Context) ([]model.Genre, error)
	ForMovie(ctx context.Context, movieID model.MovieID) ([]string, error)
	EnsureByName(ctx context.Context, name string) (model.Genre, error)
}

type ReviewReader interface {
	RecentForMovie(ctx context.Context, movieID model.MovieID, limit int) []model.Review
	ReviewFor(ctx context.Context, userID model.UserID, movieID model.MovieID) *model.Review
}

type RatingReader interface {
	RatingFor(ctx context.Context, userID model.UserID, movieID model.MovieID) *model.Rating
}

// CastCrewRepository is the document-store collaborator. Reads only; a lost
// connection means empty lists, not failed detail views.
type CastCrewRepository interface {
	Cast(ctx context.Context, movieID model.MovieID) ([]model.CastMember, error)
	Crew(ctx context.Context, movieID model.MovieID) ([]model.CrewMember, error)
}

// Cache is a soft read-through for movie rows; a miss or error falls back to
// the store.
type Cache interface {
	Get(movieID model.MovieID) (*model.Movie, bool)
	Set(movie *model.Movie)
}

type HomePage struct {
	Movies []*model.Movie
	Plan   pagination.Plan
}

type Detail struct {
	Movie    *model.Movie
	Cast     []model.CastMember
	Crew     []model.CrewMember
	Director *model.CrewMember
	Reviews  []model.Review

	OwnRating *model.Rating
	OwnReview *model.Review
}

type Usecase struct {
	repository Repository
	genres     GenreRepository
	reviews    ReviewReader
	ratings    RatingReader
	castCrew   CastCrewRepository
	cache      Cache
	logger     *slog.Logger
}

func New(
	repository Repository,
	genres GenreRepository,
	reviews ReviewReader,
	ratings RatingReader,
	castCrew CastCrewRepository,
	cache Cache,
	logger *slog.Logger,
) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{
		repository: repository,
		genres:     genres,
		reviews:    reviews,
		ratings:    ratings,
		castCrew:   castCrew,
		cache:      cache,
		logger:     logger,
	}
}

// HomePage is the unfiltered browse path: newest releases first, shaped by
// the planner with the page ceiling. Store failures degrade to an empty page.
func (u *Usecase) HomePage(ctx context.Context, page, perPage int) HomePage {
	total, err := u.repository.Count(ctx)
	if err != nil {
		u.logger.Error("movie count failed", slog.String("error", err.Error()))
		total = 0
	}

	plan := pagination.Compute(page, perPage, HomeMaxPages, total)
	if plan.Page == 0 {
		return HomePage{Movies: []*model.Movie{}, Plan: plan}
	}

	movies, err := u.repository.PageByRecency(ctx, plan.PageSize, plan.Offset())
	if err != nil {
		u.logger.Error("movie page fetch failed",
			slog.Int("page", plan.Page),
			slog.String("error", err.Error()),
		)
		return HomePage{Movies: []*model.Movie{}, Plan: plan}
	}

	return HomePage{Movies: movies, Plan: plan}
}

// Detail assembles a movie view: relational row plus genres, document-store
// cast/crew, the newest reviews, and the viewer's own rating/review when a
// viewer is given. Only a missing movie is an error; every auxiliary fetch
// degrades to empty.
func (u *Usecase) Detail(ctx context.Context, movieID model.MovieID, viewer *model.UserID) (Detail, error) {
	movie, err := u.loadMovie(ctx, movieID)
	if err != nil {
		return Detail{}, err
	}

	genres, err := u.genres.ForMovie(ctx, movieID)
	if err != nil {
		u.logger.Error("genre fetch failed", slog.Int64("movie_id", movieID), slog.String("error", err.Error()))
		genres = nil
	}
	movie.Genres = genres

	detail := Detail{
		Movie:   movie,
		Cast:    u.cast(ctx, movieID),
		Crew:    u.crew(ctx, movieID),
		Reviews: u.reviews.RecentForMovie(ctx, movieID, recentReviewLimit),
	}
	detail.Director = firstDirector(detail.Crew)

	if viewer != nil {
		detail.OwnRating = u.ratings.RatingFor(ctx, *viewer, movieID)
		detail.OwnReview = u.reviews.ReviewFor(ctx, *viewer, movieID)
	}

	return detail, nil
}

// Years lists the distinct release years present in the catalog, newest
// first, for filter dropdowns.
func (u *Usecase) Years(ctx context.Context) []int {
	years, err := u.repository.AvailableYears(ctx)
	if err != nil {
		u.logger.Error("year listing failed", slog.String("error", err.Error()))
		return []int{}
	}
	return years
}

func (u *Usecase) Genres(ctx context.Context) []model.Genre {
	genres, err := u.genres.All(ctx)
	if err != nil {
		u.logger.Error("genre listing failed", slog.String("error", err.Error()))
		return []model.Genre{}
	}
	return genres
}

func (u *Usecase) loadMovie(ctx context.Context, movieID model.MovieID) (*model.Movie, error) {
	if u.cache != nil {
		if movie, ok := u.cache.Get(movieID); ok {
			return movie, nil
		}
	}

	movie, err := u.repository.ByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	if u.cache != nil {
		u.cache.Set(movie)
	}
	return movie, nil
}

func (u *Usecase) cast(ctx context.Context, movieID model.MovieID) []model.CastMember {
	cast, err := u.castCrew.Cast(ctx, movieID)
	if err != nil {
		u.logger.Error("cast fetch failed", slog.Int64("movie_id", movieID), slog.String("error", err.Error()))
		return []model.CastMember{}
	}
	return cast
}

func (u *Usecase) crew(ctx context.Context, movieID model.MovieID) []model.CrewMember {
	crew, err := u.castCrew.Crew(ctx, movieID)
	if err != nil {
		u.logger.Error("crew fetch failed", slog.Int64("movie_id", movieID), slog.String("error", err.Error()))
		return []model.CrewMember{}
	}
	return crew
}

func firstDirector(crew []model.CrewMember) *model.CrewMember {
	for i := range crew {
		if crew[i].Job == directorJob {
			return &crew[i]
		}
	}
	return nil
}
