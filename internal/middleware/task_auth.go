package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/durgaprameelakukkala/go-todo-app/internal/constants"
	apierrors "github.com/durgaprameelakukkala/go-todo-app/internal/errors"
)

// TaskIDParam parses the :id route parameter. Non-numeric ids are
// answered with 404 like any unknown route.
func TaskIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.NotFound(c, "")
			return
		}

		c.Set(constants.ContextKeyTaskID, taskID)
		c.Next()
	}
}

// GetTaskID retrieves the parsed task id from context
func GetTaskID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(constants.ContextKeyTaskID)
	if !exists {
		return 0, false
	}
	taskID, ok := v.(uint64)
	return taskID, ok
}
