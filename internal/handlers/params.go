package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		RespondBadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// pagingParams reads Spring-style paging: 0-based page, size, and
// sort=field,dir.
func pagingParams(c *gin.Context) (page, size int, sortField, sortDir string) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	sortField = "name"
	sortDir = "asc"
	if sort := c.Query("sort"); sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		sortField = parts[0]
		if len(parts) == 2 {
			sortDir = strings.ToLower(parts[1])
		}
	}
	return page, size, sortField, sortDir
}
