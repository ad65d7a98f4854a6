package paginator

import (
	"slices"

	"github.com/samber/lo"
)

// Meta is the pagination metadata attached to every response. Total and
// TotalPages are present only when the counting query ran; cursors are present
// only when the corresponding page exists.
type Meta struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      *int64 `json:"total,omitempty"`
	TotalPages *int64 `json:"total_pages,omitempty"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
	NextCursor string `json:"next_cursor,omitempty"`
	PrevCursor string `json:"prev_cursor,omitempty"`
}

// Response is a generic paginated result container.
type Response[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// KeyFunc extracts the sort-field value from a row. It is consulted when
// minting next/prev cursors; pass nil when cursors are not needed.
type KeyFunc[T any] func(T) CursorValue

// TotalPages returns ceil(total / perPage).
func TotalPages(total int64, perPage int) int64 {
	return (total + int64(perPage) - 1) / int64(perPage)
}

// BuildResponse converts the raw row sequence returned by the execution
// collaborator into the final page. Rows must have been fetched with
// Params.DatasetLimit (the limit-plus-one probe) in fetch order: for a Before
// cursor that is the reverse of the nominal sort, and BuildResponse re-reverses
// it so output ordering is always consistent with the requested sort.
//
// total is the result of the independent counting query, or nil when it was
// skipped or disabled.
func BuildResponse[T any](p *Params, rows []T, total *int64, key KeyFunc[T]) Response[T] {
	cursor, cursorMode := p.Cursor()

	if rows == nil {
		rows = []T{}
	}

	// The probe row signals a further page in fetch direction and never
	// reaches the client.
	probe := len(rows) > p.perPage
	if probe {
		rows = rows[:p.perPage]
	}
	if cursorMode && cursor.Reversed() {
		rows = lo.Reverse(slices.Clone(rows))
	}

	var hasNext, hasPrev bool
	switch {
	case !cursorMode:
		// A short fetch ends the dataset regardless of what the count query
		// said; the total only decides when the page came back full.
		full := len(rows) == p.perPage
		hasNext = probe || (full && total != nil && int64(p.page)*int64(p.perPage) < *total)
		hasPrev = p.page > 1
	case cursor.Direction == CursorAfter:
		hasNext = probe
		hasPrev = true
	default: // Before: the probe looks backwards, the page we came from is ahead.
		hasNext = true
		hasPrev = probe
	}

	meta := Meta{
		Page:    p.page,
		PerPage: p.perPage,
		HasNext: hasNext,
		HasPrev: hasPrev,
	}

	if p.totalCount && total != nil {
		meta.Total = total
		meta.TotalPages = lo.ToPtr(TotalPages(*total, p.perPage))
	}

	if p.sortBy != "" && key != nil && len(rows) > 0 {
		if hasNext {
			meta.NextCursor = NewCursor(p.sortBy, key(rows[len(rows)-1]), CursorAfter).Encode()
		}
		if hasPrev && cursorMode {
			meta.PrevCursor = NewCursor(p.sortBy, key(rows[0]), CursorBefore).Encode()
		}
	}

	return Response[T]{Data: rows, Meta: meta}
}
