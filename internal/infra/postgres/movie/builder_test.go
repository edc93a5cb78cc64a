//go:build !integration
// +build !integration

package infra_postgres_movie

import (
	"testing"

	"github.com/stretchr/testify/assert"

	usecase_search "github.com/moviebase/core/internal/usecase/search"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func fPtr(f float64) *float64 { return &f }

func TestCompileFilters(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		filters      usecase_search.Filters
		expectedJoin string
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:         "term alone compiles to a title match",
			filters:      usecase_search.Filters{Term: strPtr("matrix")},
			expectedSQL:  " WHERE m.title ILIKE ?",
			expectedArgs: []any{"%matrix%"},
		},
		{
			name:         "genre adds the joins and the name clause",
			filters:      usecase_search.Filters{Genre: strPtr("Action")},
			expectedJoin: " JOIN movie_genres mg ON mg.movie_id = m.id JOIN genres g ON g.id = mg.genre_id",
			expectedSQL:  " WHERE g.name = ?",
			expectedArgs: []any{"Action"},
		},
		{
			name:         "equal year bounds collapse to equality",
			filters:      usecase_search.Filters{YearFrom: intPtr(1999), YearTo: intPtr(1999)},
			expectedSQL:  " WHERE EXTRACT(YEAR FROM m.release_date) = ?",
			expectedArgs: []any{1999},
		},
		{
			name:         "distinct year bounds compile to BETWEEN",
			filters:      usecase_search.Filters{YearFrom: intPtr(1990), YearTo: intPtr(1999)},
			expectedSQL:  " WHERE EXTRACT(YEAR FROM m.release_date) BETWEEN ? AND ?",
			expectedArgs: []any{1990, 1999},
		},
		{
			name:         "open-ended lower bound compiles to >=",
			filters:      usecase_search.Filters{YearFrom: intPtr(2000)},
			expectedSQL:  " WHERE EXTRACT(YEAR FROM m.release_date) >= ?",
			expectedArgs: []any{2000},
		},
		{
			name:         "open-ended upper bound compiles to <=",
			filters:      usecase_search.Filters{YearTo: intPtr(2010)},
			expectedSQL:  " WHERE EXTRACT(YEAR FROM m.release_date) <= ?",
			expectedArgs: []any{2010},
		},
		{
			name:         "minimum rating guards the zero-count division",
			filters:      usecase_search.Filters{MinAvgRating: fPtr(4)},
			expectedSQL:  " WHERE (CASE WHEN m.rating_count > 0 THEN m.rating_sum / m.rating_count ELSE 0 END) >= ?",
			expectedArgs: []any{4.0},
		},
		{
			name: "all filters AND together in declaration order",
			filters: usecase_search.Filters{
				Term:         strPtr("mat"),
				Genre:        strPtr("Action"),
				YearFrom:     intPtr(1990),
				YearTo:       intPtr(1999),
				MinAvgRating: fPtr(3.5),
			},
			expectedJoin: " JOIN movie_genres mg ON mg.movie_id = m.id JOIN genres g ON g.id = mg.genre_id",
			expectedSQL: " WHERE m.title ILIKE ? AND g.name = ?" +
				" AND EXTRACT(YEAR FROM m.release_date) BETWEEN ? AND ?" +
				" AND (CASE WHEN m.rating_count > 0 THEN m.rating_sum / m.rating_count ELSE 0 END) >= ?",
			expectedArgs: []any{"%mat%", "Action", 1990, 1999, 3.5},
		},
		{
			name:    "no filters compile to nothing",
			filters: usecase_search.Filters{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := compileFilters(tc.filters)

			assert.Equal(t, tc.expectedJoin, p.joinSQL())
			assert.Equal(t, tc.expectedSQL, p.whereSQL())
			assert.Equal(t, tc.expectedArgs, p.args)
		})
	}
}
