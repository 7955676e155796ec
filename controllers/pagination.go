package controllers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soham2710/bulemo/utils"
)

// parsePagination reads ?page and ?limit; absent or non-numeric values fall
// back to page 1 / 10 per page.
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

func buildPagination(total int64, page, limit int) utils.Pagination {
	return utils.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
