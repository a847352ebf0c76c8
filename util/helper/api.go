package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPaginationParams reads page/per_page query parameters with the
// defaults the API has always used.
func GetPaginationParams(c *gin.Context) (page int, perPage int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, 0, err
	}
	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return page, perPage, nil
}

// TotalPages computes the page count for a total and page size.
func TotalPages(totalCount int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalCount) / perPage
	if int(totalCount)%perPage != 0 {
		pages++
	}
	return pages
}
