package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moviebase/core/internal/model"
	usecase_movie "github.com/moviebase/core/internal/usecase/movie"
	usecase_search "github.com/moviebase/core/internal/usecase/search"
)

const movieColumns = "m.id, m.title, m.overview, m.poster_url, m.release_date, m.runtime_minutes, m.rating_sum, m.rating_count"

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

// SearchRanked is the full-text strategy: relevance order over the title
// index, bounded by limit before the caller pages in memory.
func (d *Driver) SearchRanked(ctx context.Context, term string, limit int) ([]*model.Movie, error) {
	query := `
		SELECT ` + movieColumns + `,
			ts_rank(to_tsvector('english', m.title), plainto_tsquery('english', $1)) AS rank
		FROM movies m
		WHERE to_tsvector('english', m.title) @@ plainto_tsquery('english', $1)
		ORDER BY rank DESC, m.id DESC
		LIMIT $2
	`

	var rows []rankedMovieDB
	if err := d.db.SelectContext(ctx, &rows, query, term, limit); err != nil {
		return nil, fmt.Errorf("failed to run ranked search: %w", err)
	}

	movies := make([]*model.Movie, len(rows))
	for i := range rows {
		movie := rows[i].ToDomain()
		movies[i] = &movie
	}
	return movies, nil
}

// SearchFiltered is the substring strategy: the compiled predicate AND-ed
// together, newest releases first with id as the stable tie-break.
func (d *Driver) SearchFiltered(ctx context.Context, f usecase_search.Filters, limit, offset int) ([]*model.Movie, error) {
	p := compileFilters(f)

	query := "SELECT DISTINCT " + movieColumns +
		" FROM movies m" + p.joinSQL() + p.whereSQL() +
		" ORDER BY m.release_date DESC, m.id DESC LIMIT ? OFFSET ?"
	args := append(p.args, limit, offset)

	var rows []MovieDB
	if err := d.db.SelectContext(ctx, &rows, d.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to run filtered search: %w", err)
	}

	return toDomainList(rows), nil
}

// CountFiltered compiles the same predicate as SearchFiltered so the total
// always matches the page contents.
func (d *Driver) CountFiltered(ctx context.Context, f usecase_search.Filters) (int, error) {
	p := compileFilters(f)

	query := "SELECT COUNT(DISTINCT m.id) FROM movies m" + p.joinSQL() + p.whereSQL()

	var total int
	if err := d.db.GetContext(ctx, &total, d.db.Rebind(query), p.args...); err != nil {
		return 0, fmt.Errorf("failed to count filtered search: %w", err)
	}
	return total, nil
}

func (d *Driver) PageByRecency(ctx context.Context, limit, offset int) ([]*model.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		ORDER BY m.release_date DESC, m.id DESC
		LIMIT $1 OFFSET $2
	`

	var rows []MovieDB
	if err := d.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to load movie page: %w", err)
	}

	return toDomainList(rows), nil
}

func (d *Driver) Count(ctx context.Context) (int, error) {
	var total int
	if err := d.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM movies`); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return total, nil
}

func (d *Driver) ByID(ctx context.Context, id model.MovieID) (*model.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		WHERE m.id = $1
	`

	var row MovieDB
	if err := d.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase_movie.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie by id: %w", err)
	}

	movie := row.ToDomain()
	return &movie, nil
}

// AvailableYears lists only years actually present in the catalog, newest
// first, so filter dropdowns never offer empty years.
func (d *Driver) AvailableYears(ctx context.Context) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM release_date)::int AS year
		FROM movies
		WHERE release_date IS NOT NULL
		ORDER BY year DESC
	`

	var years []int
	if err := d.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("failed to list available years: %w", err)
	}
	return years, nil
}
