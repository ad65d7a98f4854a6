package paginator

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

// Reversed returns the opposite direction. Used when a Before cursor forces
// fetching in reverse of the nominal sort order.
func (d Direction) Reversed() Direction {
	if d == DirectionASC {
		return DirectionDESC
	}

	return DirectionASC
}

// ParseDirection resolves "asc"/"desc" (any case) into a Direction.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	return d, d.Valid()
}

// OrderBy is the single sort key applied to the dataset.
type OrderBy struct {
	Column    string
	Direction Direction
}

// ToSQL renders the ordering as "<column> <direction>" for embedding into an
// ORDER BY clause.
func (o OrderBy) ToSQL() string {
	return fmt.Sprintf("%s %s", o.Column, o.Direction)
}

// Apply applies the ordering to a gorm query.
func (o OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

var _availableColumnNameSymbols = append([]rune("_."), lo.AlphanumericCharset...)

// validateColumn guards against SQL injection by restricting allowed
// characters in column names. Values never pass through here; they are always
// bound as parameters.
func validateColumn(column string) error {
	if column == "" {
		return fmt.Errorf("empty column name")
	}

	if !lo.Every(_availableColumnNameSymbols, []rune(column)) {
		return fmt.Errorf("column name contains forbidden symbols '%s'", column)
	}

	return nil
}
