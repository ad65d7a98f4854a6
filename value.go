package paginator

import "github.com/samber/lo"

// ValueKind tags the concrete type held by a FilterValue.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindNull
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// FilterValue is a closed tagged union over the value types a filter condition
// may carry. Values of different kinds never compare equal and are never
// coerced into each other.
type FilterValue struct {
	kind ValueKind
	str  string
	i    int64
	f    float64
	b    bool
	list []FilterValue
}

func String(v string) FilterValue { return FilterValue{kind: KindString, str: v} }

func Int(v int64) FilterValue { return FilterValue{kind: KindInt, i: v} }

func Float(v float64) FilterValue { return FilterValue{kind: KindFloat, f: v} }

func Bool(v bool) FilterValue { return FilterValue{kind: KindBool, b: v} }

func Null() FilterValue { return FilterValue{kind: KindNull} }

func List(vs ...FilterValue) FilterValue {
	return FilterValue{kind: KindList, list: vs}
}

func (v FilterValue) Kind() ValueKind { return v.kind }

func (v FilterValue) IsNull() bool { return v.kind == KindNull }

// Items returns the elements of a KindList value, nil otherwise.
func (v FilterValue) Items() []FilterValue {
	if v.kind != KindList {
		return nil
	}

	return v.list
}

// Equal reports value equality. Comparing across kinds is always false.
func (v FilterValue) Equal(other FilterValue) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	case KindNull:
		return true
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		return lo.EveryBy(lo.Zip2(v.list, other.list), func(pair lo.Tuple2[FilterValue, FilterValue]) bool {
			return pair.A.Equal(pair.B)
		})
	default:
		return false
	}
}

// native converts the value into the plain Go representation handed to the
// execution collaborator as a bound parameter. Lists become a single []any so
// a set-membership predicate consumes exactly one placeholder.
func (v FilterValue) native() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindList:
		return lo.Map(v.list, func(item FilterValue, _ int) any { return item.native() })
	default:
		return nil
	}
}
