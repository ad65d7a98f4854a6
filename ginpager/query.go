// Package ginpager adapts gin requests and responses to the paginator core.
//
// It parses the documented query-string grammar into a validated descriptor
// and serializes paginated responses to JSON with mirrored pagination headers.
package ginpager

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maulanasdqn/gopaginator"
)

// Bind parses the request query string into a validated descriptor.
//
// Recognized parameters: page, per_page, sort_by, sort_direction, search,
// search_fields (comma-separated), cursor (opaque token) and any number of
// repeated filter entries in the "field:operator:value" grammar, composed as
// an AND list in encounter order. disable_total_count=true skips the counting
// query.
func Bind(c *gin.Context) (*paginator.Params, error) {
	b := paginator.New()

	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", paginator.ErrInvalidPage, raw)
		}
		b = b.WithPage(page)
	}

	if raw, ok := c.GetQuery("per_page"); ok {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", paginator.ErrInvalidPerPage, raw)
		}
		b = b.WithPerPage(perPage)
	}

	if sortBy := c.Query("sort_by"); sortBy != "" {
		direction := paginator.DirectionASC
		if raw, ok := c.GetQuery("sort_direction"); ok {
			parsed, valid := paginator.ParseDirection(raw)
			if !valid {
				return nil, fmt.Errorf("%w: unknown direction %q", paginator.ErrInvalidSortField, raw)
			}
			direction = parsed
		}
		b = b.WithSort(sortBy, direction)
	}

	for _, raw := range c.QueryArray("filter") {
		filter, err := ParseFilter(raw)
		if err != nil {
			return nil, err
		}
		b = b.WithFilter(filter)
	}

	if query := c.Query("search"); query != "" {
		fields := splitList(c.Query("search_fields"))
		b = b.WithSearch(paginator.NewSearch(query, fields...))
	}

	b = b.WithEncodedCursor(c.Query("cursor"))

	if c.Query("disable_total_count") == "true" {
		b = b.DisableTotalCount()
	}

	return b.Build()
}

// ParseFilter parses a single "field:operator:value" entry. The value part is
// typed by inference: integers, floats and booleans are recognized, everything
// else stays a string. Set and interval operators take comma-separated values;
// unary operators may omit the value part entirely.
func ParseFilter(raw string) (paginator.Filter, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return paginator.Filter{}, fmt.Errorf(
			"%w: filter %q does not match field:operator:value", paginator.ErrInvalidFilterOperator, raw)
	}

	field := parts[0]
	operator, valid := paginator.ParseOperator(parts[1])
	if !valid {
		return paginator.Filter{}, fmt.Errorf(
			"%w: unknown operator %q in filter %q", paginator.ErrInvalidFilterOperator, parts[1], raw)
	}

	var valuePart string
	if len(parts) == 3 {
		valuePart = parts[2]
	}

	return paginator.NewFilter(field, operator, parseValue(operator, valuePart)), nil
}

func parseValue(operator paginator.Operator, raw string) paginator.FilterValue {
	switch operator {
	case paginator.OpIsNull, paginator.OpIsNotNull:
		return paginator.Null()
	case paginator.OpIn, paginator.OpNotIn, paginator.OpBetween:
		items := splitList(raw)
		values := make([]paginator.FilterValue, 0, len(items))
		for _, item := range items {
			values = append(values, parseScalar(item))
		}
		return paginator.List(values...)
	default:
		return parseScalar(raw)
	}
}

func parseScalar(raw string) paginator.FilterValue {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return paginator.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return paginator.Float(f)
	}
	if raw == "true" || raw == "false" {
		return paginator.Bool(raw == "true")
	}

	return paginator.String(raw)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
