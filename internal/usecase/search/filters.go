package usecase_search

import "strings"

// Filters is the typed predicate the dispatcher hands to the store. Nil
// fields are absent; infra compiles the present ones into one AND-composed
// WHERE clause so Search and Count always agree.
type Filters struct {
	Term         *string
	Genre        *string
	YearFrom     *int
	YearTo       *int
	MinAvgRating *float64
}

// Normalized trims the term and genre and drops empty strings, so a
// whitespace-only term behaves as absent.
func (f Filters) Normalized() Filters {
	f.Term = trimmed(f.Term)
	f.Genre = trimmed(f.Genre)
	if f.YearFrom != nil && f.YearTo != nil && *f.YearFrom > *f.YearTo {
		f.YearFrom, f.YearTo = f.YearTo, f.YearFrom
	}
	return f
}

func (f Filters) Empty() bool {
	return f.Term == nil && !f.hasSecondary()
}

func (f Filters) hasSecondary() bool {
	return f.Genre != nil || f.YearFrom != nil || f.YearTo != nil || f.MinAvgRating != nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
