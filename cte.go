package paginator

import (
	"fmt"
	"strings"
)

// QueryShape classifies a base query so the compiler can pick the emission
// strategy before any predicate is attached.
type QueryShape int

const (
	// QueryShapePlain - a single SELECT; predicate and limit clauses may be
	// appended directly.
	QueryShapePlain QueryShape = iota
	// QueryShapeCTE - the query starts with a WITH clause; appending would
	// bind to the wrong scope, so the whole query must be wrapped first.
	QueryShapeCTE
	// QueryShapeUnsupported - a structure the wrapping policy cannot handle
	// safely, such as multiple statements.
	QueryShapeUnsupported
)

// ClassifyQuery inspects the base query structure. The check is purely
// structural and independent of any filter content.
func ClassifyQuery(baseQuery string) QueryShape {
	trimmed := normalizeQuery(baseQuery)
	if trimmed == "" || strings.Contains(trimmed, ";") {
		return QueryShapeUnsupported
	}

	if len(trimmed) >= 4 && strings.EqualFold(trimmed[:4], "WITH") {
		rest := trimmed[4:]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '(' {
			return QueryShapeCTE
		}
	}

	return QueryShapePlain
}

// FilterScope returns the SELECT that predicate, sort and limit clauses can
// safely attach to. A plain query passes through unchanged; a CTE-prefixed
// query is wrapped as a named subquery so the outer clauses apply against the
// wrapper's alias instead of escaping into the CTE.
func FilterScope(baseQuery string) (string, error) {
	switch ClassifyQuery(baseQuery) {
	case QueryShapeCTE:
		return fmt.Sprintf("SELECT * FROM (%s) AS _paginator_base", normalizeQuery(baseQuery)), nil
	case QueryShapePlain:
		return normalizeQuery(baseQuery), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCTE, snippet(baseQuery))
	}
}

// CountQuery returns the independent counting query for the base. It is never
// fused with the data query, since limit and offset differ.
func CountQuery(baseQuery string) (string, error) {
	scope, err := FilterScope(baseQuery)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS _paginator_count", scope), nil
}

func normalizeQuery(baseQuery string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(baseQuery), ";"))
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 40 {
		return s[:40] + "..."
	}

	return s
}
