package paginator

import (
	"fmt"

	"gorm.io/gorm"
)

// Paginate executes the descriptor against a gorm query and assembles the
// final response. db must already target the record type (via Model, Table or
// a scoped session); filters, search, the cursor boundary, sort and the
// limit-plus-one probe are applied on top.
//
// The counting query runs independently of the data query and is skipped when
// the descriptor disables the total count. key may be nil when next/prev
// cursor minting is not needed.
func Paginate[T any](db *gorm.DB, p *Params, key KeyFunc[T]) (*Response[T], error) {
	var total *int64
	if p.TotalCountEnabled() {
		var n int64
		countDB := p.CountPredicate().Apply(db.Session(&gorm.Session{}))
		if err := countDB.Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count query failed: %w", err)
		}
		total = &n
	}

	dataDB := p.Predicate().Apply(db.Session(&gorm.Session{}))

	if orderBy, ok := p.OrderBy(); ok {
		if cursor, cursorMode := p.Cursor(); cursorMode && cursor.Reversed() {
			// A Before cursor walks backwards: fetch in reverse of the nominal
			// sort, BuildResponse restores the requested ordering.
			orderBy.Direction = orderBy.Direction.Reversed()
		}
		dataDB = orderBy.Apply(dataDB)
	}

	dataDB = dataDB.Limit(p.DatasetLimit())
	if _, cursorMode := p.Cursor(); !cursorMode {
		dataDB = dataDB.Offset(p.Offset())
	}

	var rows []T
	if err := dataDB.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("paginated query failed: %w", err)
	}

	response := BuildResponse(p, rows, total, key)

	return &response, nil
}
