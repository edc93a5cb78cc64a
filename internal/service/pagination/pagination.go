package pagination

const (
	DefaultPageSize = 20
	windowSize      = 10
	windowBack      = 4
)

// Plan is a deterministic page layout for a known item count. Page is the
// effective page after clamping; Window is the strip of page numbers the
// caller may render around the current one.
type Plan struct {
	Page       int
	PageSize   int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Window     []int
}

// Compute clamps requestedPage into [1, min(maxPages, ceil(totalItems/pageSize))].
// An over-range request lands on the last allowed page, never an error. An
// empty collection yields page 0 with both flags off.
func Compute(requestedPage, pageSize, maxPages, totalItems int) Plan {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if requestedPage < 1 {
		requestedPage = 1
	}

	if totalItems <= 0 {
		return Plan{Page: 0, PageSize: pageSize, TotalPages: 0}
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	effectiveMax := totalPages
	if maxPages > 0 && maxPages < effectiveMax {
		effectiveMax = maxPages
	}

	page := requestedPage
	if page > effectiveMax {
		page = effectiveMax
	}

	return Plan{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: effectiveMax,
		HasPrev:    page > 1,
		HasNext:    page < effectiveMax,
		Window:     window(page, effectiveMax),
	}
}

// Offset translates the effective page into a row offset.
func (p Plan) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

func window(page, maxPage int) []int {
	start := page - windowBack
	if start < 1 {
		start = 1
	}
	end := start + windowSize - 1
	if end > maxPage {
		end = maxPage
	}
	if end-start < windowSize-1 && start > 1 {
		start = end - windowSize + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}
	return pages
}
