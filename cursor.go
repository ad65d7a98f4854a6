package paginator

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var _encoder = base64.RawURLEncoding

// CursorDirection tells which side of the boundary value the next page lives on.
type CursorDirection string

const (
	CursorAfter  CursorDirection = "after"
	CursorBefore CursorDirection = "before"
)

func (d CursorDirection) Valid() bool {
	return d == CursorAfter || d == CursorBefore
}

// cursorKind tags the concrete type held by a CursorValue.
type cursorKind int

const (
	cursorString cursorKind = iota
	cursorInt
	cursorFloat
)

// CursorValue is the sortable key type supported for keyset comparison.
// It survives an encode/decode round trip without changing kind.
type CursorValue struct {
	kind cursorKind
	str  string
	i    int64
	f    float64
}

func CursorString(v string) CursorValue { return CursorValue{kind: cursorString, str: v} }

func CursorInt(v int64) CursorValue { return CursorValue{kind: cursorInt, i: v} }

func CursorFloat(v float64) CursorValue { return CursorValue{kind: cursorFloat, f: v} }

// CursorUUID carries a UUID sort key as its canonical string form.
func CursorUUID(v uuid.UUID) CursorValue { return CursorString(v.String()) }

// filterValue converts the cursor key into the FilterValue bound by the
// compiled boundary comparison.
func (v CursorValue) filterValue() FilterValue {
	switch v.kind {
	case cursorInt:
		return Int(v.i)
	case cursorFloat:
		return Float(v.f)
	default:
		return String(v.str)
	}
}

// MarshalJSON - implements json.Marshaler. The value is written untagged;
// the kind is recovered from the JSON type on decode.
func (v CursorValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case cursorInt:
		return json.Marshal(v.i)
	case cursorFloat:
		return json.Marshal(v.f)
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON - implements json.Unmarshaler. Only strings and numbers are
// schema-valid cursor keys; anything else fails the structural check.
func (v *CursorValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch rv := raw.(type) {
	case string:
		*v = CursorString(rv)
	case json.Number:
		s := rv.String()
		if !strings.ContainsAny(s, ".eE") {
			i, err := rv.Int64()
			if err != nil {
				return err
			}
			*v = CursorInt(i)
			return nil
		}
		f, err := rv.Float64()
		if err != nil {
			return err
		}
		*v = CursorFloat(f)
	default:
		return fmt.Errorf("cursor value must be a string or a number")
	}

	return nil
}

// Cursor is a keyset pagination boundary: continue retrieval after or before
// the row whose sort key equals Value. It is self-contained; no server-side
// cursor state exists.
type Cursor struct {
	Field     string
	Value     CursorValue
	Direction CursorDirection
}

func NewCursor(field string, value CursorValue, direction CursorDirection) Cursor {
	return Cursor{Field: field, Value: value, Direction: direction}
}

// wireCursor is the compact self-describing token body.
type wireCursor struct {
	Field     string          `json:"f"`
	Value     CursorValue     `json:"v"`
	Direction CursorDirection `json:"d"`
}

// Encode serializes the cursor into an opaque ASCII-safe token.
func (c Cursor) Encode() string {
	data, err := json.Marshal(wireCursor{Field: c.Field, Value: c.Value, Direction: c.Direction})
	if err != nil {
		panic(fmt.Errorf("cannot marshal cursor value: %w", err))
	}

	return _encoder.EncodeToString(data)
}

// DecodeCursor reverses Encode. Any token that does not reverse-transform, or
// whose content is not a schema-valid (field, value, direction) triple, fails
// with ErrInvalidCursor. No further trust is placed in the token content; field
// legitimacy is checked against the sortable schema at Build time.
func DecodeCursor(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, fmt.Errorf("%w: empty token", ErrInvalidCursor)
	}

	data, err := _encoder.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: failed to decode base64 token: %s", ErrInvalidCursor, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var wire wireCursor
	if err = dec.Decode(&wire); err != nil {
		return Cursor{}, fmt.Errorf("%w: failed to unmarshal token body: %s", ErrInvalidCursor, err)
	}
	if dec.More() {
		return Cursor{}, fmt.Errorf("%w: trailing data in token", ErrInvalidCursor)
	}

	if wire.Field == "" {
		return Cursor{}, fmt.Errorf("%w: missing cursor field", ErrInvalidCursor)
	}
	if err = validateColumn(wire.Field); err != nil {
		return Cursor{}, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
	}
	if !wire.Direction.Valid() {
		return Cursor{}, fmt.Errorf("%w: unknown direction '%s'", ErrInvalidCursor, wire.Direction)
	}

	return Cursor{Field: wire.Field, Value: wire.Value, Direction: wire.Direction}, nil
}

// CompareOperator resolves the comparison applied to the sort field given the
// active sort direction:
//
//	(After, ASC) -> gt    (After, DESC) -> lt
//	(Before, ASC) -> lt   (Before, DESC) -> gt
func (c Cursor) CompareOperator(sortDirection Direction) Operator {
	after := c.Direction == CursorAfter
	asc := sortDirection == DirectionASC

	if after == asc {
		return OpGt
	}

	return OpLt
}

// Reversed reports whether rows must be fetched in the reverse of the nominal
// sort order and re-reversed afterwards, so output ordering stays consistent
// regardless of cursor direction.
func (c Cursor) Reversed() bool {
	return c.Direction == CursorBefore
}
