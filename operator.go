package paginator

// Operator defines a comparison operator for filtering by column.
// The string form is the canonical token used in the query-string filter
// grammar ("field:operator:value").
type Operator string

const (
	OpEq        Operator = "eq"
	OpNe        Operator = "ne"
	OpGt        Operator = "gt"
	OpLt        Operator = "lt"
	OpGte       Operator = "gte"
	OpLte       Operator = "lte"
	OpLike      Operator = "like"
	OpILike     Operator = "ilike"
	OpContains  Operator = "contains"
	OpIn        Operator = "in"
	OpNotIn     Operator = "not_in"
	OpIsNull    Operator = "is_null"
	OpIsNotNull Operator = "is_not_null"
	OpBetween   Operator = "between"
)

// operatorArity is the number and shape of bound values an operator consumes.
type operatorArity int

const (
	arityNone operatorArity = iota // unary predicate, no bound value
	arityOne                       // exactly one bound value
	arityList                      // a non-empty list bound as one set value
	arityPair                      // exactly two bound values (closed interval)
)

var _operators = map[Operator]operatorArity{
	OpEq:        arityOne,
	OpNe:        arityOne,
	OpGt:        arityOne,
	OpLt:        arityOne,
	OpGte:       arityOne,
	OpLte:       arityOne,
	OpLike:      arityOne,
	OpILike:     arityOne,
	OpContains:  arityOne,
	OpIn:        arityList,
	OpNotIn:     arityList,
	OpIsNull:    arityNone,
	OpIsNotNull: arityNone,
	OpBetween:   arityPair,
}

func (o Operator) Valid() bool {
	_, ok := _operators[o]
	return ok
}

func (o Operator) arity() operatorArity {
	return _operators[o]
}

// ParseOperator resolves a grammar token into an Operator.
func ParseOperator(s string) (Operator, bool) {
	op := Operator(s)
	return op, op.Valid()
}

// sqlToken returns the SQL spelling for operators that render as a plain
// "column TOKEN ?" comparison. Set, unary and interval operators are shaped
// by the predicate emitter instead.
func (o Operator) sqlToken() string {
	switch o {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpLike, OpContains:
		return "LIKE"
	case OpILike:
		return "ILIKE"
	default:
		return string(o)
	}
}
