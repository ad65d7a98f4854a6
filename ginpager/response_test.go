package ginpager

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/maulanasdqn/gopaginator"
)

func Test_JSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	response := &paginator.Response[string]{
		Data: []string{"a", "b"},
		Meta: paginator.Meta{
			Page:       2,
			PerPage:    2,
			Total:      lo.ToPtr(int64(5)),
			TotalPages: lo.ToPtr(int64(3)),
			HasNext:    true,
			HasPrev:    true,
		},
	}

	JSON(c, http.StatusOK, response)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "2", recorder.Header().Get("X-Current-Page"))
	require.Equal(t, "2", recorder.Header().Get("X-Per-Page"))
	require.Equal(t, "5", recorder.Header().Get("X-Total-Count"))
	require.Equal(t, "3", recorder.Header().Get("X-Total-Pages"))
	require.JSONEq(t, `{
		"data": ["a", "b"],
		"meta": {"page": 2, "per_page": 2, "total": 5, "total_pages": 3, "has_next": true, "has_prev": true}
	}`, recorder.Body.String())
}

func Test_JSON_WithoutTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	JSON(c, http.StatusOK, &paginator.Response[string]{
		Data: []string{},
		Meta: paginator.Meta{Page: 1, PerPage: 20},
	})

	require.Empty(t, recorder.Header().Get("X-Total-Count"))
	require.Empty(t, recorder.Header().Get("X-Total-Pages"))
	require.JSONEq(t, `{
		"data": [],
		"meta": {"page": 1, "per_page": 20, "has_next": false, "has_prev": false}
	}`, recorder.Body.String())
}

func Test_LinkHeader(t *testing.T) {
	meta := paginator.Meta{
		Page:       2,
		PerPage:    20,
		TotalPages: lo.ToPtr(int64(5)),
		HasNext:    true,
		HasPrev:    true,
	}

	got := LinkHeader("https://api.example.com/users", meta)

	want := `<https://api.example.com/users?page=1&per_page=20>; rel="first", ` +
		`<https://api.example.com/users?page=1&per_page=20>; rel="prev", ` +
		`<https://api.example.com/users?page=3&per_page=20>; rel="next", ` +
		`<https://api.example.com/users?page=5&per_page=20>; rel="last"`
	require.Equal(t, want, got)
}

func Test_LinkHeader_FirstPage(t *testing.T) {
	meta := paginator.Meta{Page: 1, PerPage: 20, HasNext: true}

	got := LinkHeader("/users", meta)

	require.Contains(t, got, `rel="first"`)
	require.Contains(t, got, `rel="next"`)
	require.NotContains(t, got, `rel="prev"`)
	require.NotContains(t, got, `rel="last"`)
}
