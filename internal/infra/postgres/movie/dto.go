package infra_postgres_movie

import (
	"database/sql"

	"github.com/moviebase/core/internal/model"
)

type MovieDB struct {
	ID          int64        `db:"id"`
	Title       string       `db:"title"`
	Overview    string       `db:"overview"`
	PosterURL   string       `db:"poster_url"`
	ReleaseDate sql.NullTime `db:"release_date"`
	Runtime     int          `db:"runtime_minutes"`
	RatingSum   float64      `db:"rating_sum"`
	RatingCount int          `db:"rating_count"`
}

// rankedMovieDB carries the ts_rank score alongside the row for the
// full-text query.
type rankedMovieDB struct {
	MovieDB
	Rank float64 `db:"rank"`
}

// ToDomain maps a NULL release date to the zero time; the schema allows
// undated rows and a page must not fail because one is in it.
func (m *MovieDB) ToDomain() model.Movie {
	return model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterURL:   m.PosterURL,
		ReleaseDate: m.ReleaseDate.Time,
		Runtime:     m.Runtime,
		RatingSum:   m.RatingSum,
		RatingCount: m.RatingCount,
	}
}

func toDomainList(rows []MovieDB) []*model.Movie {
	movies := make([]*model.Movie, len(rows))
	for i := range rows {
		movie := rows[i].ToDomain()
		movies[i] = &movie
	}
	return movies
}
