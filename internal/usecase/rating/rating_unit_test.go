//go:build !integration
// +build !integration

package usecase_rating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moviebase/core/internal/model"
	invalidator_mocks "github.com/moviebase/core/internal/usecase/rating/mocks/rating/invalidator"
	repo_mocks "github.com/moviebase/core/internal/usecase/rating/mocks/rating/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseRatingUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase     *Usecase
	repository  *repo_mocks.Repository
	invalidator *invalidator_mocks.Invalidator
	ctx         context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	invalidator := invalidator_mocks.NewInvalidator(t)
	usecase := New(repository, invalidator, nil)

	return &resources{
		usecase:     usecase,
		repository:  repository,
		invalidator: invalidator,
		ctx:         context.Background(),
	}
}

func (s *UsecaseRatingUnitSuite) TestUpsertRating(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources, rating model.Rating)
		rating      model.Rating
		expectedErr error
	}{
		{
			name: "Should store a valid score and invalidate the cache",
			setupMocks: func(r *resources, rating model.Rating) {
				r.repository.On("Upsert", r.ctx, rating).Return(nil).Once()
				r.invalidator.On("Invalidate", rating.MovieID).Once()
			},
			rating: model.Rating{UserID: 7, MovieID: 603, Score: 4.5},
		},
		{
			name: "Should accept the lower bound",
			setupMocks: func(r *resources, rating model.Rating) {
				r.repository.On("Upsert", r.ctx, rating).Return(nil).Once()
				r.invalidator.On("Invalidate", rating.MovieID).Once()
			},
			rating: model.Rating{UserID: 7, MovieID: 603, Score: 0},
		},
		{
			name: "Should accept the upper bound",
			setupMocks: func(r *resources, rating model.Rating) {
				r.repository.On("Upsert", r.ctx, rating).Return(nil).Once()
				r.invalidator.On("Invalidate", rating.MovieID).Once()
			},
			rating: model.Rating{UserID: 7, MovieID: 603, Score: 5},
		},
		{
			name:        "Should reject a score below range before any write",
			setupMocks:  func(r *resources, rating model.Rating) {},
			rating:      model.Rating{UserID: 7, MovieID: 603, Score: -0.5},
			expectedErr: ErrInvalidScore,
		},
		{
			name:        "Should reject a score above range before any write",
			setupMocks:  func(r *resources, rating model.Rating) {},
			rating:      model.Rating{UserID: 7, MovieID: 603, Score: 5.5},
			expectedErr: ErrInvalidScore,
		},
		{
			name: "Should wrap store failures",
			setupMocks: func(r *resources, rating model.Rating) {
				r.repository.On("Upsert", r.ctx, rating).Return(errors.New("tx aborted")).Once()
			},
			rating:      model.Rating{UserID: 7, MovieID: 603, Score: 3},
			expectedErr: ErrStoreFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r, tc.rating)

			err := r.usecase.UpsertRating(r.ctx, tc.rating)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				r.repository.AssertExpectations(t)
			} else {
				assert.NoError(t, err)
			}
			if errors.Is(tc.expectedErr, ErrInvalidScore) {
				r.repository.AssertNotCalled(t, "Upsert")
			}
			if tc.expectedErr != nil {
				r.invalidator.AssertNotCalled(t, "Invalidate")
			}
		})
	}
}

func (s *UsecaseRatingUnitSuite) TestUpdateRating(t provider.T) {
	t.Parallel()

	t.Run("Should pass rating-not-found through unchanged", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rating := model.Rating{UserID: 7, MovieID: 603, Score: 2}
		r.repository.On("Update", r.ctx, rating).Return(ErrRatingNotFound).Once()

		err := r.usecase.UpdateRating(r.ctx, rating)

		assert.ErrorIs(t, err, ErrRatingNotFound)
		assert.NotErrorIs(t, err, ErrStoreFailed)
		r.invalidator.AssertNotCalled(t, "Invalidate")
	})

	t.Run("Should invalidate after a successful update", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rating := model.Rating{UserID: 7, MovieID: 603, Score: 2}
		r.repository.On("Update", r.ctx, rating).Return(nil).Once()
		r.invalidator.On("Invalidate", rating.MovieID).Once()

		assert.NoError(t, r.usecase.UpdateRating(r.ctx, rating))
	})

	t.Run("Should validate the score before touching the store", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		err := r.usecase.UpdateRating(r.ctx, model.Rating{UserID: 7, MovieID: 603, Score: 9})

		assert.ErrorIs(t, err, ErrInvalidScore)
		r.repository.AssertNotCalled(t, "Update")
	})
}

func (s *UsecaseRatingUnitSuite) TestDeleteRating(t provider.T) {
	t.Parallel()

	t.Run("Should delete and invalidate", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.repository.On("Delete", r.ctx, int64(7), int64(603)).Return(nil).Once()
		r.invalidator.On("Invalidate", int64(603)).Once()

		assert.NoError(t, r.usecase.DeleteRating(r.ctx, 7, 603))
	})

	t.Run("Should pass rating-not-found through unchanged", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.repository.On("Delete", r.ctx, int64(7), int64(603)).Return(ErrRatingNotFound).Once()

		assert.ErrorIs(t, r.usecase.DeleteRating(r.ctx, 7, 603), ErrRatingNotFound)
		r.invalidator.AssertNotCalled(t, "Invalidate")
	})
}

func (s *UsecaseRatingUnitSuite) TestRatingFor(t provider.T) {
	t.Parallel()

	t.Run("Should return the stored rating", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		stored := &model.Rating{UserID: 7, MovieID: 603, Score: 4}
		r.repository.On("ForUserAndMovie", r.ctx, int64(7), int64(603)).Return(stored, nil).Once()

		assert.Equal(t, stored, r.usecase.RatingFor(r.ctx, 7, 603))
	})

	t.Run("Should return nil on lookup failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.repository.On("ForUserAndMovie", r.ctx, int64(7), int64(603)).Return(nil, errors.New("conn reset")).Once()

		assert.Nil(t, r.usecase.RatingFor(r.ctx, 7, 603))
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRatingUnitSuite))
}
