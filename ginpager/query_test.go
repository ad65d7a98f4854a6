package ginpager

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/maulanasdqn/gopaginator"
)

func newTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)

	return c
}

func Test_Bind(t *testing.T) {
	c := newTestContext(t,
		"/users?page=3&per_page=25&sort_by=created_at&sort_direction=desc"+
			"&filter=status:eq:active&filter=age:gte:18"+
			"&search=john&search_fields=name,email")

	params, err := Bind(c)
	require.NoError(t, err)

	require.Equal(t, 3, params.Page())
	require.Equal(t, 25, params.PerPage())

	order, ok := params.OrderBy()
	require.True(t, ok)
	require.Equal(t, "created_at", order.Column)
	require.Equal(t, paginator.DirectionDESC, order.Direction)

	filters := params.Filters()
	require.Len(t, filters, 2)
	require.Equal(t, "status", filters[0].Field)
	require.Equal(t, paginator.OpEq, filters[0].Operator)
	require.True(t, filters[0].Value.Equal(paginator.String("active")))
	require.Equal(t, paginator.OpGte, filters[1].Operator)
	require.True(t, filters[1].Value.Equal(paginator.Int(18)))

	search, ok := params.Search()
	require.True(t, ok)
	require.Equal(t, "john", search.Query)
	require.Equal(t, []string{"name", "email"}, search.Fields)
}

func Test_Bind_Defaults(t *testing.T) {
	params, err := Bind(newTestContext(t, "/users"))
	require.NoError(t, err)

	require.Equal(t, paginator.DefaultPage, params.Page())
	require.Equal(t, paginator.DefaultPerPage, params.PerPage())
	require.Empty(t, params.Filters())

	_, ok := params.Cursor()
	require.False(t, ok)
}

func Test_Bind_Cursor(t *testing.T) {
	token := paginator.NewCursor("id", paginator.CursorInt(42), paginator.CursorAfter).Encode()

	c := newTestContext(t, "/users?sort_by=id&cursor="+token)

	params, err := Bind(c)
	require.NoError(t, err)

	cursor, ok := params.Cursor()
	require.True(t, ok)
	require.Equal(t, "id", cursor.Field)
}

func Test_Bind_DisableTotalCount(t *testing.T) {
	params, err := Bind(newTestContext(t, "/users?disable_total_count=true"))
	require.NoError(t, err)
	require.False(t, params.TotalCountEnabled())
}

func Test_Bind_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   error
	}{
		{"page not a number", "/users?page=abc", paginator.ErrInvalidPage},
		{"per_page not a number", "/users?per_page=2.5", paginator.ErrInvalidPerPage},
		{"page below one", "/users?page=0", paginator.ErrInvalidPage},
		{"per_page above cap", "/users?per_page=500", paginator.ErrInvalidPerPage},
		{"unknown direction", "/users?sort_by=id&sort_direction=down", paginator.ErrInvalidSortField},
		{"malformed filter", "/users?filter=justafield", paginator.ErrInvalidFilterOperator},
		{"unknown filter operator", "/users?filter=age:matches:18", paginator.ErrInvalidFilterOperator},
		{"garbage cursor", "/users?sort_by=id&cursor=not-a-token", paginator.ErrInvalidCursor},
		{"cursor without sort", "/users?cursor=" + paginator.NewCursor("id", paginator.CursorInt(1), paginator.CursorAfter).Encode(), paginator.ErrInvalidCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bind(newTestContext(t, tt.target))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func Test_ParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		field    string
		operator paginator.Operator
		value    paginator.FilterValue
	}{
		{"string eq", "status:eq:active", "status", paginator.OpEq, paginator.String("active")},
		{"int gte", "age:gte:18", "age", paginator.OpGte, paginator.Int(18)},
		{"float lt", "score:lt:4.5", "score", paginator.OpLt, paginator.Float(4.5)},
		{"bool eq", "active:eq:true", "active", paginator.OpEq, paginator.Bool(true)},
		{"in list", "status:in:active,pending", "status", paginator.OpIn,
			paginator.List(paginator.String("active"), paginator.String("pending"))},
		{"between pair", "age:between:18,65", "age", paginator.OpBetween,
			paginator.List(paginator.Int(18), paginator.Int(65))},
		{"is_null without value", "deleted_at:is_null", "deleted_at", paginator.OpIsNull, paginator.Null()},
		{"contains substring", "name:contains:jo", "name", paginator.OpContains, paginator.String("jo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := ParseFilter(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.field, filter.Field)
			require.Equal(t, tt.operator, filter.Operator)
			require.True(t, filter.Value.Equal(tt.value))
		})
	}
}

func Test_ParseFilter_Invalid(t *testing.T) {
	for _, raw := range []string{"", "field", "field:matches:value"} {
		_, err := ParseFilter(raw)
		require.ErrorIs(t, err, paginator.ErrInvalidFilterOperator, "raw=%q", raw)
	}
}
