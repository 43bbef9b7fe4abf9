package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasklist/internal/models"
	"tasklist/internal/services"
)

// APIHandler exposes the task flows as JSON.
type APIHandler struct {
	service services.TaskService
}

func NewAPIHandler(service services.TaskService) *APIHandler {
	return &APIHandler{service: service}
}

type createTaskRequest struct {
	Description string `json:"description" example:"Pay the bills"`
	DueDate     string `json:"dueDate" example:"2024-05-10"`
	CategoryID  string `json:"categoryId" example:"casa"`
	StatusID    string `json:"statusId" example:"aberto"`
}

type validationResponse struct {
	Errors models.ValidationErrors `json:"errors"`
}

type deleteCompletedResponse struct {
	Deleted int64 `json:"deleted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListTasks godoc
// @Summary      List tasks
// @Description  Returns tasks matching a "<categoryId>-<dueBucket>-<statusId>" filter token plus lookup data.
// @Tags         tasks
// @Produce      json
// @Param        filter  query     string  false  "filter token, e.g. casa-hoje-aberto"
// @Success      200     {object}  services.TaskList
// @Failure      500     {object}  errorResponse
// @Router       /api/tasks [get]
func (h *APIHandler) ListTasks(c *gin.Context) {
	token := c.Query("filter")
	list, err := h.service.List(c.Request.Context(), models.ParseFilter(token))
	if err != nil {
		log.Printf("[api][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateTask godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task  body      createTaskRequest  true  "task"
// @Success      201   {object}  models.Task
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  validationResponse
// @Router       /api/tasks [post]
func (h *APIHandler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[api][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	task := models.Task{
		Description: req.Description,
		DueDate:     parseDate(req.DueDate),
		CategoryID:  req.CategoryID,
		StatusID:    req.StatusID,
	}
	if req.DueDate != "" && task.DueDate == nil {
		c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: models.ValidationErrors{
			{Field: "dueDate", Message: dueDateFormatMessage},
		}})
		return
	}

	verrs, err := h.service.Add(c.Request.Context(), &task)
	if err != nil {
		log.Printf("[api][create][err] %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create task"})
		return
	}
	if len(verrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: verrs})
		return
	}
	log.Printf("[api][create][ok] id=%d", task.ID)
	c.JSON(http.StatusCreated, task)
}

// CompleteTask godoc
// @Summary      Mark a task complete
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "task id"
// @Success      200  {object}  models.Task
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id}/complete [post]
func (h *APIHandler) CompleteTask(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	task, err := h.service.MarkComplete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[api][complete][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteCompleted godoc
// @Summary      Delete every completed task
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  deleteCompletedResponse
// @Router       /api/tasks/completed [delete]
func (h *APIHandler) DeleteCompleted(c *gin.Context) {
	n, err := h.service.DeleteCompleted(c.Request.Context())
	if err != nil {
		log.Printf("[api][deleteCompleted][err] %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to delete tasks"})
		return
	}
	c.JSON(http.StatusOK, deleteCompletedResponse{Deleted: n})
}

// ListCategories godoc
// @Summary      List categories
// @Tags         reference
// @Produce      json
// @Success      200  {array}  models.Category
// @Router       /api/categories [get]
func (h *APIHandler) ListCategories(c *gin.Context) {
	lookups, err := h.service.Lookups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, lookups.Categories)
}

// ListStatuses godoc
// @Summary      List statuses
// @Tags         reference
// @Produce      json
// @Success      200  {array}  models.Status
// @Router       /api/statuses [get]
func (h *APIHandler) ListStatuses(c *gin.Context) {
	lookups, err := h.service.Lookups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, lookups.Statuses)
}
