package paginator

import "slices"

// Params is the validated, immutable pagination descriptor. It is built once
// per request by Builder.Build, consumed by the compiler and the metadata
// calculator, and never mutated afterwards, so it is safe to share across
// goroutines without coordination.
type Params struct {
	page          int
	perPage       int
	sortBy        string
	sortDirection Direction
	filters       []Filter
	search        *Search
	cursor        *Cursor
	totalCount    bool
}

func (p *Params) Page() int { return p.page }

func (p *Params) PerPage() int { return p.perPage }

func (p *Params) SortBy() string { return p.sortBy }

func (p *Params) SortDirection() Direction { return p.sortDirection }

func (p *Params) Filters() []Filter { return slices.Clone(p.filters) }

func (p *Params) Search() (Search, bool) {
	if p.search == nil {
		return Search{}, false
	}

	return *p.search, true
}

func (p *Params) Cursor() (Cursor, bool) {
	if p.cursor == nil {
		return Cursor{}, false
	}

	return *p.cursor, true
}

func (p *Params) TotalCountEnabled() bool { return p.totalCount }

// OrderBy returns the nominal sort key, when one was requested.
func (p *Params) OrderBy() (OrderBy, bool) {
	if p.sortBy == "" {
		return OrderBy{}, false
	}

	return OrderBy{Column: p.sortBy, Direction: p.sortDirection}, true
}

// Offset is the row offset for offset-style retrieval. Meaningless when a
// cursor drives retrieval.
func (p *Params) Offset() int {
	return (p.page - 1) * p.perPage
}

// Limit is the page size the caller asked for.
func (p *Params) Limit() int { return p.perPage }

// DatasetLimit is the effective fetch limit: one extra row beyond the page
// size, so the metadata calculator can detect a further page without a count
// query (the limit-plus-one probe).
func (p *Params) DatasetLimit() int { return p.perPage + 1 }

// HasConditions reports whether any filter or search condition will be
// compiled. The cursor boundary does not count; it scopes retrieval, not the
// total.
func (p *Params) HasConditions() bool {
	return len(p.filters) > 0 || p.search != nil
}
