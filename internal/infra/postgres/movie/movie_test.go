//go:build !integration
// +build !integration

package infra_postgres_movie

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	usecase_movie "github.com/moviebase/core/internal/usecase/movie"
	usecase_search "github.com/moviebase/core/internal/usecase/search"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type MovieInfraUnitSuite struct {
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

var movieCols = []string{"id", "title", "overview", "poster_url", "release_date", "runtime_minutes", "rating_sum", "rating_count"}

func movieRow(rows *sqlmock.Rows, id int64, title string) *sqlmock.Rows {
	return rows.AddRow(id, title, "overview", "poster.jpg", time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC), 136, 9.0, 2)
}

func (suite *MovieInfraUnitSuite) TestSearchRanked(t provider.T) {
	t.Parallel()

	t.Run("Should keep the relevance order the index produced", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rows := sqlmock.NewRows(append(movieCols, "rank"))
		rows.AddRow(603, "The Matrix", "overview", "poster.jpg", time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC), 136, 9.0, 2, 0.9)
		rows.AddRow(604, "The Matrix Reloaded", "overview", "poster.jpg", time.Date(2003, 5, 15, 0, 0, 0, 0, time.UTC), 138, 4.0, 1, 0.6)

		r.mock.ExpectQuery("ts_rank").
			WithArgs("matrix", 50).
			WillReturnRows(rows)

		movies, err := r.driver.SearchRanked(r.ctx, "matrix", 50)

		assert.NoError(t, err)
		assert.Len(t, movies, 2)
		assert.Equal(t, int64(603), movies[0].ID)
		assert.Equal(t, int64(604), movies[1].ID)
	})
}

func (suite *MovieInfraUnitSuite) TestSearchFiltered(t provider.T) {
	t.Parallel()

	t.Run("Should bind the compiled predicate with paging at the end", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		genre := "Action"
		filters := usecase_search.Filters{Genre: &genre}

		r.mock.ExpectQuery("SELECT DISTINCT .+ JOIN movie_genres mg").
			WithArgs("Action", 20, 0).
			WillReturnRows(movieRow(sqlmock.NewRows(movieCols), 603, "The Matrix"))

		movies, err := r.driver.SearchFiltered(r.ctx, filters, 20, 0)

		assert.NoError(t, err)
		assert.Len(t, movies, 1)
		assert.Equal(t, "The Matrix", movies[0].Title)
	})
}

func (suite *MovieInfraUnitSuite) TestCountFiltered(t provider.T) {
	t.Parallel()

	t.Run("Should count through the same joins and clauses as the search", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		genre := "Action"
		filters := usecase_search.Filters{Genre: &genre}

		r.mock.ExpectQuery("SELECT COUNT\\(DISTINCT m.id\\) FROM movies m JOIN movie_genres mg").
			WithArgs("Action").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		total, err := r.driver.CountFiltered(r.ctx, filters)

		assert.NoError(t, err)
		assert.Equal(t, 7, total)
	})
}

func (suite *MovieInfraUnitSuite) TestPageByRecency(t provider.T) {
	t.Parallel()

	t.Run("Should scan rows without a release date instead of dropping the page", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rows := movieRow(sqlmock.NewRows(movieCols), 603, "The Matrix")
		rows.AddRow(605, "Unannounced Sequel", "overview", "poster.jpg", nil, 0, 0.0, 0)

		r.mock.ExpectQuery("ORDER BY m.release_date DESC, m.id DESC").
			WithArgs(20, 0).
			WillReturnRows(rows)

		movies, err := r.driver.PageByRecency(r.ctx, 20, 0)

		assert.NoError(t, err)
		assert.Len(t, movies, 2)
		assert.False(t, movies[0].ReleaseDate.IsZero())
		assert.True(t, movies[1].ReleaseDate.IsZero())
	})
}

func (suite *MovieInfraUnitSuite) TestByID(t provider.T) {
	t.Parallel()

	t.Run("Should load one row", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.mock.ExpectQuery("FROM movies m").
			WithArgs(int64(603)).
			WillReturnRows(movieRow(sqlmock.NewRows(movieCols), 603, "The Matrix"))

		movie, err := r.driver.ByID(r.ctx, 603)

		assert.NoError(t, err)
		assert.Equal(t, "The Matrix", movie.Title)
		assert.Equal(t, 4.5, movie.AverageRating())
	})

	t.Run("Should translate no rows into the not-found sentinel", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.mock.ExpectQuery("FROM movies m").
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(movieCols))

		_, err := r.driver.ByID(r.ctx, 999)

		assert.ErrorIs(t, err, usecase_movie.ErrMovieNotFound)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(MovieInfraUnitSuite))
}
