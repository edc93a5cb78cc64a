//go:build !integration
// +build !integration

package infra_postgres_rating

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/moviebase/core/internal/model"
	usecase_rating "github.com/moviebase/core/internal/usecase/rating"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type RatingInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

func aggregateRows(sum float64, count int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"sum", "count"}).AddRow(sum, count)
}

func expectMovieLock(mock sqlmock.Sqlmock, movieID int64) {
	mock.ExpectQuery("SELECT id FROM movies WHERE id = (.+) FOR UPDATE").
		WithArgs(movieID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(movieID))
}

func (suite *RatingInfraUnitSuite) TestUpsert(t provider.T) {
	t.Parallel()

	t.Run("Should lock the movie, write the row and the aggregate in one transaction", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rating := model.Rating{UserID: 7, MovieID: 603, Score: 4.5}

		r.mock.ExpectBegin()
		expectMovieLock(r.mock, rating.MovieID)
		r.mock.ExpectExec("INSERT INTO ratings").
			WithArgs(rating.UserID, rating.MovieID, rating.Score).
			WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectQuery("SELECT COALESCE").
			WithArgs(rating.MovieID).
			WillReturnRows(aggregateRows(4.5, 1))
		r.mock.ExpectExec("UPDATE movies").
			WithArgs(4.5, 1, rating.MovieID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectCommit()

		assert.NoError(t, r.driver.Upsert(r.ctx, rating))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should roll back when the row write fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rating := model.Rating{UserID: 7, MovieID: 603, Score: 4.5}

		r.mock.ExpectBegin()
		expectMovieLock(r.mock, rating.MovieID)
		r.mock.ExpectExec("INSERT INTO ratings").
			WithArgs(rating.UserID, rating.MovieID, rating.Score).
			WillReturnError(errors.New("deadlock detected"))
		r.mock.ExpectRollback()

		err := r.driver.Upsert(r.ctx, rating)

		assert.Error(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should roll back when the aggregate write fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rating := model.Rating{UserID: 7, MovieID: 603, Score: 4.5}

		r.mock.ExpectBegin()
		expectMovieLock(r.mock, rating.MovieID)
		r.mock.ExpectExec("INSERT INTO ratings").
			WithArgs(rating.UserID, rating.MovieID, rating.Score).
			WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectQuery("SELECT COALESCE").
			WithArgs(rating.MovieID).
			WillReturnRows(aggregateRows(4.5, 1))
		r.mock.ExpectExec("UPDATE movies").
			WithArgs(4.5, 1, rating.MovieID).
			WillReturnError(errors.New("conn reset"))
		r.mock.ExpectRollback()

		err := r.driver.Upsert(r.ctx, rating)

		assert.Error(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *RatingInfraUnitSuite) TestUpdate(t provider.T) {
	t.Parallel()

	t.Run("Should report not-found for a missing row and roll back", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rating := model.Rating{UserID: 7, MovieID: 603, Score: 2}

		r.mock.ExpectBegin()
		expectMovieLock(r.mock, rating.MovieID)
		r.mock.ExpectExec("UPDATE ratings").
			WithArgs(rating.Score, rating.UserID, rating.MovieID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		r.mock.ExpectRollback()

		err := r.driver.Update(r.ctx, rating)

		assert.ErrorIs(t, err, usecase_rating.ErrRatingNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *RatingInfraUnitSuite) TestDelete(t provider.T) {
	t.Parallel()

	t.Run("Should restore the aggregate to zero after the last rating goes", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.mock.ExpectBegin()
		expectMovieLock(r.mock, 603)
		r.mock.ExpectExec("DELETE FROM ratings").
			WithArgs(int64(7), int64(603)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectQuery("SELECT COALESCE").
			WithArgs(int64(603)).
			WillReturnRows(aggregateRows(0, 0))
		r.mock.ExpectExec("UPDATE movies").
			WithArgs(0.0, 0, int64(603)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectCommit()

		assert.NoError(t, r.driver.Delete(r.ctx, 7, 603))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report not-found for a missing row", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.mock.ExpectBegin()
		expectMovieLock(r.mock, 603)
		r.mock.ExpectExec("DELETE FROM ratings").
			WithArgs(int64(7), int64(603)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		r.mock.ExpectRollback()

		assert.ErrorIs(t, r.driver.Delete(r.ctx, 7, 603), usecase_rating.ErrRatingNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *RatingInfraUnitSuite) TestForUserAndMovie(t provider.T) {
	t.Parallel()

	t.Run("Should translate no rows into nil without error", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.mock.ExpectQuery("SELECT user_id, movie_id, score").
			WithArgs(int64(7), int64(603)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "movie_id", "score"}))

		rating, err := r.driver.ForUserAndMovie(r.ctx, 7, 603)

		assert.NoError(t, err)
		assert.Nil(t, rating)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RatingInfraUnitSuite))
}
