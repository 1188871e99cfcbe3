package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// RegisterRoutes mounts the API on r
func RegisterRoutes(r *gin.Engine, taskService *services.TaskService) {
	taskHandler := NewTaskHandler(taskService)
	activityHandler := NewActivityHandler(taskService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task board API is running",
		})
	})

	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", middleware.RequireTaskID(), taskHandler.GetTask)
			tasks.PUT("/:id", middleware.RequireTaskID(), taskHandler.UpdateTask)
			tasks.PATCH("/:id", middleware.RequireTaskID(), taskHandler.UpdateTask)
			tasks.GET("/:id/activity", middleware.RequireTaskID(), taskHandler.GetTaskActivity)
		}

		api.GET("/activity", activityHandler.ListActivity)
		api.POST("/activity", activityHandler.LogActivity)
		api.GET("/stats", activityHandler.GetStats)
	}
}
