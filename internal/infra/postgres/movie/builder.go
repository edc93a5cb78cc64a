package infra_postgres_movie

import (
	"strings"

	usecase_search "github.com/moviebase/core/internal/usecase/search"
)

// predicate is the compiled form of a search.Filters value: the joins and
// AND-composed WHERE clauses with their `?` parameters, still independent of
// the final placeholder dialect (callers Rebind). Search and Count both
// compile through here, which is what keeps their semantics identical.
type predicate struct {
	joins []string
	where []string
	args  []any
}

func compileFilters(f usecase_search.Filters) predicate {
	var p predicate

	if f.Term != nil {
		p.clause("m.title ILIKE ?", "%"+*f.Term+"%")
	}
	if f.Genre != nil {
		p.join("JOIN movie_genres mg ON mg.movie_id = m.id")
		p.join("JOIN genres g ON g.id = mg.genre_id")
		p.clause("g.name = ?", *f.Genre)
	}
	p.yearRange(f.YearFrom, f.YearTo)
	if f.MinAvgRating != nil {
		// Zero-count guard: an unrated movie averages 0, never divides by zero.
		p.clause("(CASE WHEN m.rating_count > 0 THEN m.rating_sum / m.rating_count ELSE 0 END) >= ?", *f.MinAvgRating)
	}

	return p
}

func (p *predicate) clause(expr string, args ...any) {
	p.where = append(p.where, expr)
	p.args = append(p.args, args...)
}

func (p *predicate) join(expr string) {
	p.joins = append(p.joins, expr)
}

func (p *predicate) yearRange(from, to *int) {
	switch {
	case from != nil && to != nil && *from == *to:
		p.clause("EXTRACT(YEAR FROM m.release_date) = ?", *from)
	case from != nil && to != nil:
		p.clause("EXTRACT(YEAR FROM m.release_date) BETWEEN ? AND ?", *from, *to)
	case from != nil:
		p.clause("EXTRACT(YEAR FROM m.release_date) >= ?", *from)
	case to != nil:
		p.clause("EXTRACT(YEAR FROM m.release_date) <= ?", *to)
	}
}

func (p predicate) joinSQL() string {
	if len(p.joins) == 0 {
		return ""
	}
	return " " + strings.Join(p.joins, " ")
}

func (p predicate) whereSQL() string {
	if len(p.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.where, " AND ")
}
