package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/constants"
)

// GetActivityLimit extracts the ?limit= query parameter for activity feeds.
// Missing or unparsable values fall back to the default; values beyond the
// maximum are capped.
func GetActivityLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultActivityLimit)))
	if err != nil || limit < constants.MinActivityLimit {
		return constants.DefaultActivityLimit
	}
	if limit > constants.MaxActivityLimit {
		return constants.MaxActivityLimit
	}
	return limit
}
