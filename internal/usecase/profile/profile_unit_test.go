//go:build !integration
// +build !integration

package usecase_profile

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moviebase/core/internal/model"
	repo_mocks "github.com/moviebase/core/internal/usecase/profile/mocks/profile/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseProfileUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	usecase := New(repository, nil)

	return &resources{
		usecase:    usecase,
		repository: repository,
		ctx:        context.Background(),
	}
}

func ratedEntry(movieID int64, title string, score float64) model.FeedEntry {
	return model.FeedEntry{MovieID: movieID, Title: title, Rating: &score}
}

func reviewedEntry(movieID int64, title string, at time.Time) model.FeedEntry {
	text := "review of " + title
	return model.FeedEntry{MovieID: movieID, Title: title, ReviewText: &text, ReviewedAt: &at}
}

func (s *UsecaseProfileUnitSuite) TestFeed(t provider.T) {
	t.Parallel()

	t.Run("Should order rated by score then review-only by recency", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		rated := []model.FeedEntry{
			ratedEntry(2, "movieB", 2.0),
			ratedEntry(1, "movieA", 4.0),
		}
		reviewedOnly := []model.FeedEntry{
			reviewedEntry(3, "movieC", base.Add(10*time.Minute)),
			reviewedEntry(4, "movieD", base.Add(20*time.Minute)),
		}
		r.repository.On("RatedMovies", r.ctx, int64(7)).Return(rated, nil).Once()
		r.repository.On("ReviewedOnlyMovies", r.ctx, int64(7)).Return(reviewedOnly, nil).Once()

		feed := r.usecase.Feed(r.ctx, 7)

		titles := make([]string, len(feed))
		for i, entry := range feed {
			titles[i] = entry.Title
		}
		assert.Equal(t, []string{"movieA", "movieB", "movieD", "movieC"}, titles)
	})

	t.Run("Should degrade rated fetch failure to an empty feed", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.repository.On("RatedMovies", r.ctx, int64(7)).Return(nil, errors.New("conn reset")).Once()

		assert.Empty(t, r.usecase.Feed(r.ctx, 7))
		r.repository.AssertNotCalled(t, "ReviewedOnlyMovies")
	})

	t.Run("Should degrade review-only fetch failure to an empty feed", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.repository.On("RatedMovies", r.ctx, int64(7)).Return([]model.FeedEntry{ratedEntry(1, "movieA", 4)}, nil).Once()
		r.repository.On("ReviewedOnlyMovies", r.ctx, int64(7)).Return(nil, errors.New("conn reset")).Once()

		assert.Empty(t, r.usecase.Feed(r.ctx, 7))
	})
}

func (s *UsecaseProfileUnitSuite) TestMerge(t provider.T) {
	t.Parallel()

	t.Run("Should keep input order for equal scores", func(t provider.T) {
		t.Parallel()

		rated := []model.FeedEntry{
			ratedEntry(1, "first", 3.0),
			ratedEntry(2, "second", 3.0),
			ratedEntry(3, "third", 3.0),
		}

		feed := Merge(rated, nil)

		assert.Equal(t, int64(1), feed[0].MovieID)
		assert.Equal(t, int64(2), feed[1].MovieID)
		assert.Equal(t, int64(3), feed[2].MovieID)
	})

	t.Run("Should match a single-comparator oracle on shuffled input", func(t provider.T) {
		t.Parallel()

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		rated := make([]model.FeedEntry, 0, 20)
		reviewedOnly := make([]model.FeedEntry, 0, 20)
		for i := 0; i < 20; i++ {
			rated = append(rated, ratedEntry(int64(i), "rated", float64(i%7)*0.5))
			reviewedOnly = append(reviewedOnly, reviewedEntry(int64(100+i), "reviewed", base.Add(time.Duration(i%11)*time.Hour)))
		}
		rng := rand.New(rand.NewSource(42))
		rng.Shuffle(len(rated), func(i, j int) { rated[i], rated[j] = rated[j], rated[i] })
		rng.Shuffle(len(reviewedOnly), func(i, j int) { reviewedOnly[i], reviewedOnly[j] = reviewedOnly[j], reviewedOnly[i] })

		oracle := make([]model.FeedEntry, 0, len(rated)+len(reviewedOnly))
		oracle = append(oracle, rated...)
		oracle = append(oracle, reviewedOnly...)
		sort.SliceStable(oracle, func(i, j int) bool {
			a, b := oracle[i], oracle[j]
			aRated, bRated := a.Rating != nil, b.Rating != nil
			if aRated != bRated {
				return aRated
			}
			if aRated {
				return *a.Rating > *b.Rating
			}
			return a.ReviewedAt.After(*b.ReviewedAt)
		})

		feed := Merge(rated, reviewedOnly)

		assert.Equal(t, oracle, feed)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseProfileUnitSuite))
}
