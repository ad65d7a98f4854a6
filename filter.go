package paginator

import "fmt"

// Filter is a single field condition. A request holds an ordered sequence of
// filters; order is preserved so bound parameters come out deterministically,
// semantically all filters are AND-combined.
type Filter struct {
	Field    string
	Operator Operator
	Value    FilterValue
}

func NewFilter(field string, op Operator, value FilterValue) Filter {
	return Filter{Field: field, Operator: op, Value: value}
}

// validate checks that the value shape matches the operator arity. It fires at
// Builder.Build, never earlier.
func (f Filter) validate() error {
	if err := validateColumn(f.Field); err != nil {
		return err
	}

	if !f.Operator.Valid() {
		return fmt.Errorf("%w: unknown operator '%s'", ErrInvalidFilterOperator, f.Operator)
	}

	switch f.Operator.arity() {
	case arityNone:
		if !f.Value.IsNull() {
			return fmt.Errorf("%w: operator '%s' takes no value, got %s",
				ErrInvalidFilterOperator, f.Operator, f.Value.Kind())
		}
	case arityOne:
		if f.Value.IsNull() || f.Value.Kind() == KindList {
			return fmt.Errorf("%w: operator '%s' requires exactly one value, got %s",
				ErrInvalidFilterOperator, f.Operator, f.Value.Kind())
		}
		if isPatternOperator(f.Operator) && f.Value.Kind() != KindString {
			return fmt.Errorf("%w: operator '%s' requires a string value, got %s",
				ErrInvalidFilterOperator, f.Operator, f.Value.Kind())
		}
	case arityList:
		if f.Value.Kind() != KindList || len(f.Value.Items()) == 0 {
			return fmt.Errorf("%w: operator '%s' requires a non-empty list, got %s",
				ErrInvalidFilterOperator, f.Operator, f.Value.Kind())
		}
	case arityPair:
		if f.Value.Kind() != KindList || len(f.Value.Items()) != 2 {
			return fmt.Errorf("%w: operator '%s' requires exactly two values",
				ErrInvalidFilterOperator, f.Operator)
		}
	}

	return nil
}

func isPatternOperator(op Operator) bool {
	return op == OpLike || op == OpILike || op == OpContains
}
