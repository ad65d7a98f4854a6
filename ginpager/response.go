package ginpager

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maulanasdqn/gopaginator"
)

// JSON writes the paginated response as a JSON body and mirrors the metadata
// into response headers. Total headers are set only when the counting query
// ran.
func JSON[T any](c *gin.Context, status int, response *paginator.Response[T]) {
	c.Header("X-Current-Page", strconv.Itoa(response.Meta.Page))
	c.Header("X-Per-Page", strconv.Itoa(response.Meta.PerPage))

	if response.Meta.Total != nil {
		c.Header("X-Total-Count", strconv.FormatInt(*response.Meta.Total, 10))
	}
	if response.Meta.TotalPages != nil {
		c.Header("X-Total-Pages", strconv.FormatInt(*response.Meta.TotalPages, 10))
	}

	c.JSON(status, response)
}

// LinkHeader renders an RFC 5988 Link header with first/prev/next/last
// relations for offset-style navigation.
func LinkHeader(baseURL string, meta paginator.Meta) string {
	links := make([]string, 0, 4)
	link := func(page int, rel string) string {
		return fmt.Sprintf("<%s?page=%d&per_page=%d>; rel=%q", baseURL, page, meta.PerPage, rel)
	}

	links = append(links, link(1, "first"))
	if meta.HasPrev && meta.Page > 1 {
		links = append(links, link(meta.Page-1, "prev"))
	}
	if meta.HasNext {
		links = append(links, link(meta.Page+1, "next"))
	}
	if meta.TotalPages != nil {
		links = append(links, link(int(*meta.TotalPages), "last"))
	}

	return strings.Join(links, ", ")
}
