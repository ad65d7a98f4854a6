package paginator

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Builder accumulates incremental pagination declarations and produces an
// immutable Params value. All validation fires in Build, never earlier, so a
// partially configured builder is never observed as valid. Builders are cheap;
// construct one per request.
type Builder struct {
	params          Params
	sortableColumns []string
	cursorErr       error
}

func New() *Builder {
	return &Builder{
		params: Params{
			page:          DefaultPage,
			perPage:       DefaultPerPage,
			sortDirection: DirectionASC,
			totalCount:    true,
		},
	}
}

func (b *Builder) WithPage(page int) *Builder {
	if b == nil {
		b = New()
	}

	b.params.page = page

	return b
}

func (b *Builder) WithPerPage(perPage int) *Builder {
	if b == nil {
		b = New()
	}

	b.params.perPage = perPage

	return b
}

// WithSort sets the sort key and direction. Exactly one sort field is
// supported; a later call replaces the earlier one.
func (b *Builder) WithSort(field string, direction Direction) *Builder {
	if b == nil {
		b = New()
	}

	b.params.sortBy = field
	b.params.sortDirection = direction

	return b
}

// WithSortableColumns restricts sort and cursor fields to the given schema.
// Without it any column passing the name guard is accepted.
func (b *Builder) WithSortableColumns(columns ...string) *Builder {
	if b == nil {
		b = New()
	}

	b.sortableColumns = columns

	return b
}

func (b *Builder) WithFilter(filter Filter) *Builder {
	if b == nil {
		b = New()
	}

	b.params.filters = append(b.params.filters, filter)

	return b
}

func (b *Builder) FilterEq(field string, value FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpEq, value))
}

func (b *Builder) FilterNe(field string, value FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpNe, value))
}

func (b *Builder) FilterGt(field string, value FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpGt, value))
}

func (b *Builder) FilterLt(field string, value FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpLt, value))
}

func (b *Builder) FilterGte(field string, value FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpGte, value))
}

func (b *Builder) FilterLte(field string, value FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpLte, value))
}

// FilterLike matches against the pattern as supplied; the caller provides the
// wildcard characters.
func (b *Builder) FilterLike(field, pattern string) *Builder {
	return b.WithFilter(NewFilter(field, OpLike, String(pattern)))
}

func (b *Builder) FilterILike(field, pattern string) *Builder {
	return b.WithFilter(NewFilter(field, OpILike, String(pattern)))
}

// FilterContains matches rows whose column contains the substring; wildcard
// wrapping happens at compile time.
func (b *Builder) FilterContains(field, substring string) *Builder {
	return b.WithFilter(NewFilter(field, OpContains, String(substring)))
}

func (b *Builder) FilterIn(field string, values ...FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpIn, List(values...)))
}

func (b *Builder) FilterNotIn(field string, values ...FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpNotIn, List(values...)))
}

func (b *Builder) FilterBetween(field string, minValue, maxValue FilterValue) *Builder {
	return b.WithFilter(NewFilter(field, OpBetween, List(minValue, maxValue)))
}

func (b *Builder) FilterIsNull(field string) *Builder {
	return b.WithFilter(NewFilter(field, OpIsNull, Null()))
}

func (b *Builder) FilterIsNotNull(field string) *Builder {
	return b.WithFilter(NewFilter(field, OpIsNotNull, Null()))
}

func (b *Builder) WithSearch(search Search) *Builder {
	if b == nil {
		b = New()
	}

	b.params.search = &search

	return b
}

func (b *Builder) WithCursor(cursor Cursor) *Builder {
	if b == nil {
		b = New()
	}

	b.params.cursor = &cursor

	return b
}

func (b *Builder) CursorAfter(field string, value CursorValue) *Builder {
	return b.WithCursor(NewCursor(field, value, CursorAfter))
}

func (b *Builder) CursorBefore(field string, value CursorValue) *Builder {
	return b.WithCursor(NewCursor(field, value, CursorBefore))
}

// WithEncodedCursor decodes an opaque token obtained from a previous response.
// An empty token means no cursor. A decode failure is remembered and surfaced
// by Build.
func (b *Builder) WithEncodedCursor(token string) *Builder {
	if b == nil {
		b = New()
	}

	if token == "" {
		return b
	}

	cursor, err := DecodeCursor(token)
	if err != nil {
		b.cursorErr = err
		return b
	}

	b.params.cursor = &cursor

	return b
}

// DisableTotalCount skips the counting query; total and total_pages are then
// absent from the response metadata.
func (b *Builder) DisableTotalCount() *Builder {
	if b == nil {
		b = New()
	}

	b.params.totalCount = false

	return b
}

// Build validates the accumulated declarations and returns the immutable
// descriptor. Multiple builds from the same inputs are value-equal.
func (b *Builder) Build() (*Params, error) {
	if b == nil {
		b = New()
	}

	if b.cursorErr != nil {
		return nil, b.cursorErr
	}

	if b.params.page < 1 {
		return nil, fmt.Errorf("%w: %d, page must be >= 1", ErrInvalidPage, b.params.page)
	}
	if b.params.perPage < 1 || b.params.perPage > MaxPerPage {
		return nil, fmt.Errorf("%w: %d, per_page must be between 1 and %d",
			ErrInvalidPerPage, b.params.perPage, MaxPerPage)
	}

	for _, filter := range b.params.filters {
		if err := filter.validate(); err != nil {
			return nil, err
		}
	}

	if b.params.search != nil {
		if err := b.params.search.validate(); err != nil {
			return nil, err
		}
	}

	if err := b.validateSort(); err != nil {
		return nil, err
	}
	if err := b.validateCursor(); err != nil {
		return nil, err
	}

	params := b.params
	params.filters = slices.Clone(b.params.filters)

	return &params, nil
}

func (b *Builder) validateSort() error {
	if b.params.sortBy == "" {
		return nil
	}

	if err := validateColumn(b.params.sortBy); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSortField, err)
	}
	if !b.params.sortDirection.Valid() {
		return fmt.Errorf("%w: unknown direction '%s'", ErrInvalidSortField, b.params.sortDirection)
	}

	if len(b.sortableColumns) > 0 && !lo.Contains(b.sortableColumns, b.params.sortBy) {
		return fmt.Errorf("%w: '%s' is not sortable, closest allowed: '%s'",
			ErrInvalidSortField, b.params.sortBy, closestColumn(b.params.sortBy, b.sortableColumns))
	}

	return nil
}

func (b *Builder) validateCursor() error {
	if b.params.cursor == nil {
		return nil
	}

	// A cursor is meaningless without a sort key to compare against.
	if b.params.sortBy == "" {
		return fmt.Errorf("%w: cursor requires sort_by to be set", ErrInvalidCursor)
	}
	if b.params.cursor.Field != b.params.sortBy {
		return fmt.Errorf("%w: cursor field '%s' does not match sort field '%s'",
			ErrInvalidCursor, b.params.cursor.Field, b.params.sortBy)
	}
	if !b.params.cursor.Direction.Valid() {
		return fmt.Errorf("%w: unknown direction '%s'", ErrInvalidCursor, b.params.cursor.Direction)
	}

	return nil
}
