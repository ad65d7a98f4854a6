package paginator

import (
	"database/sql/driver"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Predicate is the backend-agnostic compilation result: an AND-combined set of
// conditions (with search expanded into a nested OR group) plus the ordered
// bind values for its placeholders. Compilation is pure; the same descriptor
// always compiles to the same predicate.
type Predicate struct {
	conjunction tConjunction
}

// Predicate compiles the full retrieval predicate: filters in declaration
// order, then the search group, then the cursor boundary comparison.
func (p *Params) Predicate() Predicate {
	conjunction := p.filterConjunction()

	if cursor, ok := p.Cursor(); ok {
		conjunction = append(conjunction, tOrGroup{{
			Column:   cursor.Field,
			Operator: cursor.CompareOperator(p.sortDirection),
			Value:    cursor.Value.filterValue(),
		}})
	}

	return Predicate{conjunction: conjunction}
}

// CountPredicate compiles the predicate for the independent counting query:
// filters and search only. The cursor boundary scopes retrieval, not the
// total, so it is left out.
func (p *Params) CountPredicate() Predicate {
	return Predicate{conjunction: p.filterConjunction()}
}

func (p *Params) filterConjunction() tConjunction {
	conjunction := make(tConjunction, 0, len(p.filters)+2)

	for _, filter := range p.filters {
		conjunction = append(conjunction, tOrGroup{{
			Column:   filter.Field,
			Operator: filter.Operator,
			Value:    filter.Value,
		}})
	}

	if search, ok := p.Search(); ok {
		group := lo.Map(search.Fields, func(field string, _ int) tCondition {
			return tCondition{
				Column:   field,
				Operator: search.operator(),
				Value:    String(search.pattern()),
			}
		})
		conjunction = append(conjunction, group)
	}

	return conjunction
}

func (pr Predicate) IsEmpty() bool {
	return len(pr.conjunction) == 0
}

// ToSQL returns the predicate as an SQL fragment with "?" placeholders and the
// bound values in placeholder order. The fragment and the values are handed
// independently to any parameterized-query collaborator; no value is ever
// interpolated into the fragment.
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM users WHERE %s", sqlClause)
func (pr Predicate) ToSQL() (string, []driver.Value) {
	return pr.conjunction.toSQLClause()
}

// Apply attaches the predicate to a gorm query.
func (pr Predicate) Apply(db *gorm.DB) *gorm.DB {
	expression := pr.conjunction.toGORMExpression()
	if expression == nil {
		return db
	}

	return db.Clauses(expression)
}

// BindValues returns only the ordered bound values. The count equals the sum
// of each operator's arity in encounter order.
func (pr Predicate) BindValues() []driver.Value {
	_, values := pr.ToSQL()
	return values
}
