package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/constants"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
)

// RequireTaskID parses the :id path parameter and stores it in the context.
// Whether the task exists is left to the handler.
func RequireTaskID() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || taskID == 0 {
			apierrors.BadRequest(c, "Invalid task ID")
			return
		}

		c.Set(constants.ContextKeyTaskID, taskID)
		c.Next()
	}
}

// GetTaskID retrieves the task ID set by RequireTaskID
func GetTaskID(c *gin.Context) (uint64, bool) {
	taskID, exists := c.Get(constants.ContextKeyTaskID)
	if !exists {
		return 0, false
	}

	v, ok := taskID.(uint64)
	return v, ok
}
