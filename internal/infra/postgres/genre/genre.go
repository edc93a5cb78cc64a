package infra_postgres_genre

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moviebase/core/internal/model"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type genreDB struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (d *Driver) All(ctx context.Context) ([]model.Genre, error) {
	query := `
		SELECT id, name
		FROM genres
		ORDER BY name
	`

	var rows []genreDB
	if err := d.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	genres := make([]model.Genre, len(rows))
	for i, row := range rows {
		genres[i] = model.Genre{ID: row.ID, Name: row.Name}
	}
	return genres, nil
}

func (d *Driver) ForMovie(ctx context.Context, movieID model.MovieID) ([]string, error) {
	query := `
		SELECT g.name
		FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1
		ORDER BY g.name
	`

	var names []string
	if err := d.db.SelectContext(ctx, &names, query, movieID); err != nil {
		return nil, fmt.Errorf("failed to load genres for movie: %w", err)
	}
	return names, nil
}

// EnsureByName creates the genre lazily when it is referenced but missing.
// The DO NOTHING + re-select pair keeps concurrent creators idempotent.
func (d *Driver) EnsureByName(ctx context.Context, name string) (model.Genre, error) {
	insert := `
		INSERT INTO genres (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := d.db.ExecContext(ctx, insert, name); err != nil {
		return model.Genre{}, fmt.Errorf("failed to ensure genre: %w", err)
	}

	var row genreDB
	query := `SELECT id, name FROM genres WHERE name = $1`
	if err := d.db.GetContext(ctx, &row, query, name); err != nil {
		return model.Genre{}, fmt.Errorf("failed to load ensured genre: %w", err)
	}

	return model.Genre{ID: row.ID, Name: row.Name}, nil
}
