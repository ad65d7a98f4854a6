package paginator

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm/clause"
)

type (
	// tCondition is a single comparison of the form Operator(Column, Value).
	tCondition struct {
		Column   string
		Value    FilterValue
		Operator Operator
	}

	tOrGroup []tCondition

	// tConjunction represents the conjunctive normal form (CNF) of the
	// compiled predicate. Each group is joined by AND, and each group consists
	// of conditions joined by OR. Plain filter conditions are groups of one;
	// the search expansion is the one multi-condition group.
	//
	// Thus:
	//
	//	CNF = X1 AND X2 ... AND Xn, where Xi = Ai1 OR Ai2 ... OR Aim.
	tConjunction []tOrGroup
)

// toSQLClause converts a condition into an SQL fragment with "?" placeholders
// and the values bound to them, in placeholder order. The value is never
// embedded as a literal in the fragment.
//
// Example:
//
//	tCondition = { Column: "age", Operator: OpGt, Value: Int(18)}
//
// Result:
//
//	("age > ?", [18])
func (c tCondition) toSQLClause() (string, []driver.Value) {
	switch c.Operator.arity() {
	case arityNone:
		if c.Operator == OpIsNull {
			return fmt.Sprintf("%s IS NULL", c.Column), nil
		}
		return fmt.Sprintf("%s IS NOT NULL", c.Column), nil
	case arityList:
		token := "IN"
		if c.Operator == OpNotIn {
			token = "NOT IN"
		}
		// The whole set binds as one placeholder; the executor expands it.
		return fmt.Sprintf("%s %s ?", c.Column, token), []driver.Value{c.Value.native()}
	case arityPair:
		items := c.Value.Items()
		return fmt.Sprintf("%s BETWEEN ? AND ?", c.Column),
			[]driver.Value{parseAnyValue(items[0].native()), parseAnyValue(items[1].native())}
	default:
		return fmt.Sprintf("%s %s ?", c.Column, c.Operator.sqlToken()),
			[]driver.Value{parseAnyValue(c.bindValue())}
	}
}

// bindValue is the single bound value for a one-value operator. Contains is
// the only operator that rewrites the value: it wraps the substring with
// wildcard markers on both sides.
func (c tCondition) bindValue() any {
	if c.Operator == OpContains && c.Value.Kind() == KindString {
		return "%" + c.Value.native().(string) + "%"
	}

	return c.Value.native()
}

// toGORMExpression converts the condition into a clause.Expression using the
// same fragment and bound values as toSQLClause.
func (c tCondition) toGORMExpression() clause.Expression {
	sqlClause, args := c.toSQLClause()

	vars := make([]any, 0, len(args))
	for _, arg := range args {
		vars = append(vars, arg)
	}

	return clause.Expr{
		SQL:  sqlClause,
		Vars: vars,
	}
}

func parseAnyValue(v any) any {
	// Try parsing a value as time.Time. If it succeeds, return time.Time.
	// Otherwise return the original value.
	fnParseBytesToTimeOrValue := func(vBytes []byte) any {
		dst := time.Time{}
		err := dst.UnmarshalText(vBytes)
		if err == nil {
			return dst
		}

		return v
	}

	switch vt := v.(type) {
	case string:
		return fnParseBytesToTimeOrValue([]byte(vt))
	case []byte:
		return fnParseBytesToTimeOrValue(vt)
	default:
		return v
	}
}

// toSQLClause converts a group (K1, K2, K3) into an SQL condition
// "(K1 OR K2 OR K3)" with the corresponding values in placeholder order.
func (g tOrGroup) toSQLClause() (string, []driver.Value) {
	orClauses := make([]string, 0, len(g))
	orValues := make([]driver.Value, 0, len(g))

	for _, condition := range g {
		orClause, values := condition.toSQLClause()
		orClauses = append(orClauses, orClause)
		orValues = append(orValues, values...)
	}

	switch {
	case len(orClauses) == 1:
		return orClauses[0], orValues
	case len(orClauses) > 1:
		return fmt.Sprintf("(%s)", strings.Join(orClauses, " OR ")), orValues
	}

	return "", nil
}

// toGORMExpression converts a group (K1, K2, K3) into a gorm expression
// "K1 OR K2 OR K3" where each Ki is expanded via tCondition.toGORMExpression.
func (g tOrGroup) toGORMExpression() clause.Expression {
	orExpressions := make([]clause.Expression, 0, len(g))
	for _, condition := range g {
		orExpressions = append(orExpressions, condition.toGORMExpression())
	}

	if len(orExpressions) == 1 {
		return orExpressions[0]
	} else if len(orExpressions) > 1 {
		return clause.Or(orExpressions...)
	}

	return nil
}

// toSQLClause converts the conjunction into an SQL condition joined by AND.
// Returns the SQL string and the values for its placeholders in order.
//
// Example:
//
//	tConjunction = {
//		{{Column: "status", Operator: OpEq, Value: String("active")}},
//		{{Column: "age", Operator: OpGt, Value: Int(18)}},
//	}
//
// Result:
//
//	("status = ? AND age > ?", ["active", 18])
func (t tConjunction) toSQLClause() (string, []driver.Value) {
	andClauses := make([]string, 0, len(t))
	values := make([]driver.Value, 0, len(t))

	for _, group := range t {
		andClause, groupValues := group.toSQLClause()
		if andClause == "" {
			continue
		}

		andClauses = append(andClauses, andClause)
		values = append(values, groupValues...)
	}

	if len(andClauses) >= 1 {
		return strings.Join(andClauses, " AND "), values
	}

	return "TRUE", nil
}

// toGORMExpression converts the conjunction into a clause.Expression, joining
// groups with AND.
func (t tConjunction) toGORMExpression() clause.Expression {
	andExpressions := make([]clause.Expression, 0, len(t))

	for _, group := range t {
		expression := group.toGORMExpression()
		if expression == nil {
			continue
		}

		andExpressions = append(andExpressions, expression)
	}

	if len(andExpressions) == 1 {
		return andExpressions[0]
	} else if len(andExpressions) > 1 {
		return clause.And(andExpressions...)
	}

	return nil
}
