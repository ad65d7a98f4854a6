package paginator

import "errors"

// Validation errors returned by Builder.Build and the request parsing layer.
// All of them indicate a malformed request, not a transient condition, and are
// matched with errors.Is. Messages carry the offending value.
var (
	ErrInvalidPage           = errors.New("invalid page")
	ErrInvalidPerPage        = errors.New("invalid per_page")
	ErrInvalidFilterOperator = errors.New("invalid filter operator")
	ErrInvalidSortField      = errors.New("invalid sort field")
	ErrInvalidCursor         = errors.New("invalid cursor")
	ErrUnsupportedCTE        = errors.New("unsupported query structure")
)
