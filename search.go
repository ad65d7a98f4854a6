package paginator

import "fmt"

// Search describes a free-text search over a set of columns. It expands into
// an OR group of per-column pattern conditions, itself AND-combined with the
// filter list.
type Search struct {
	Query         string
	Fields        []string
	CaseSensitive bool
	ExactMatch    bool
}

func NewSearch(query string, fields ...string) Search {
	return Search{Query: query, Fields: fields}
}

func (s Search) WithCaseSensitive(v bool) Search {
	s.CaseSensitive = v
	return s
}

func (s Search) WithExactMatch(v bool) Search {
	s.ExactMatch = v
	return s
}

// operator picks the comparison each column condition uses: equality for exact
// match, LIKE for case-sensitive fuzzy, ILIKE otherwise.
func (s Search) operator() Operator {
	switch {
	case s.ExactMatch:
		return OpEq
	case s.CaseSensitive:
		return OpLike
	default:
		return OpILike
	}
}

// pattern is the single bound value every column condition shares. Fuzzy mode
// wraps the query with wildcard markers, exact mode binds it untouched.
func (s Search) pattern() string {
	if s.ExactMatch {
		return s.Query
	}

	return "%" + s.Query + "%"
}

func (s Search) validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("search requires at least one field")
	}

	for _, field := range s.Fields {
		if err := validateColumn(field); err != nil {
			return err
		}
	}

	return nil
}
