package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasklist/internal/handlers"
	"tasklist/internal/views"
)

func SetupRoutes(
	r *gin.Engine,
	taskHandler *handlers.TaskHandler,
	apiHandler *handlers.APIHandler,
	exportHandler *handlers.ExportHandler,
) *gin.Engine {
	r.SetHTMLTemplate(views.Templates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ---- pages
	r.GET("/", taskHandler.Index)
	r.GET("/filter/:id", taskHandler.Index)
	r.POST("/filter", taskHandler.Filter)
	r.GET("/add", taskHandler.AddForm)
	r.POST("/add", taskHandler.Add)
	r.POST("/markComplete/:id", taskHandler.MarkComplete)
	r.POST("/deleteCompleted", taskHandler.DeleteCompleted)

	// EXPORT
	r.GET("/export", exportHandler.TaskListPDF)
	r.GET("/export/:id", exportHandler.TaskListPDF)

	// API
	api := r.Group("/api")
	{
		api.GET("/tasks", apiHandler.ListTasks)
		api.POST("/tasks", apiHandler.CreateTask)
		api.POST("/tasks/:id/complete", apiHandler.CompleteTask)
		api.DELETE("/tasks/completed", apiHandler.DeleteCompleted)
		api.GET("/categories", apiHandler.ListCategories)
		api.GET("/statuses", apiHandler.ListStatuses)
	}

	return r
}
