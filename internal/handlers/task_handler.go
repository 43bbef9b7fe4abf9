package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasklist/internal/models"
	"tasklist/internal/services"
)

// TaskHandler serves the server-rendered pages.
type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// GET / and GET /filter/:id
func (h *TaskHandler) Index(c *gin.Context) {
	token := c.Param("id")
	log.Printf("[task][list] call rid=%s filter=%q", getRequestID(c), token)

	list, err := h.service.List(c.Request.Context(), models.ParseFilter(token))
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		c.String(http.StatusInternalServerError, "failed to retrieve tasks")
		return
	}
	log.Printf("[task][list][ok] count=%d", len(list.Tasks))

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Title":      "Tasks",
		"Token":      token,
		"Filter":     list.Filter,
		"Tasks":      list.Tasks,
		"Categories": list.Categories,
		"Statuses":   list.Statuses,
		"DueBuckets": list.DueBuckets,
		"Today":      list.Today,
	})
}

// POST /filter with repeated "filter" values in category, due, status order.
func (h *TaskHandler) Filter(c *gin.Context) {
	token := models.BuildFilterToken(c.PostFormArray("filter")...)
	log.Printf("[task][filter] rid=%s token=%q", getRequestID(c), token)
	redirectToList(c, token)
}

// GET /add
func (h *TaskHandler) AddForm(c *gin.Context) {
	h.renderAddForm(c, models.Task{StatusID: models.StatusOpen}, "", nil)
}

// POST /add
func (h *TaskHandler) Add(c *gin.Context) {
	log.Printf("[task][add] call rid=%s", getRequestID(c))

	var form taskForm
	if err := decodeForm(c, &form); err != nil {
		log.Printf("[task][add][bind][err] %v", err)
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	task := form.toTask()
	if form.DueDate != "" && task.DueDate == nil {
		verrs := dueDateFormatErrors(task)
		log.Printf("[task][add][invalid] %v", verrs)
		h.renderAddForm(c, task, form.DueDate, verrs)
		return
	}

	verrs, err := h.service.Add(c.Request.Context(), &task)
	if err != nil {
		log.Printf("[task][add][err] %v", err)
		c.String(http.StatusInternalServerError, "failed to add task")
		return
	}
	if len(verrs) > 0 {
		log.Printf("[task][add][invalid] %v", verrs)
		h.renderAddForm(c, task, form.DueDate, verrs)
		return
	}

	log.Printf("[task][add][ok] id=%d", task.ID)
	redirectToList(c, "")
}

// renderAddForm shows the add page. dueDate is the raw submitted value so a
// malformed date is echoed back as typed.
func (h *TaskHandler) renderAddForm(c *gin.Context, task models.Task, dueDate string, verrs models.ValidationErrors) {
	lookups, err := h.service.Lookups(c.Request.Context())
	if err != nil {
		log.Printf("[task][add][lookups][err] %v", err)
		c.String(http.StatusInternalServerError, "failed to load form")
		return
	}
	c.HTML(http.StatusOK, "add.tmpl", gin.H{
		"Title":      "Add task",
		"Task":       task,
		"DueDate":    dueDate,
		"Errors":     verrs,
		"Categories": lookups.Categories,
		"Statuses":   lookups.Statuses,
	})
}

// POST /markComplete/:id with form value "filter"
func (h *TaskHandler) MarkComplete(c *gin.Context) {
	token := c.PostForm("filter")
	log.Printf("[task][complete] call rid=%s id_param=%s", getRequestID(c), c.Param("id"))

	id, err := parseID(c)
	if err != nil {
		log.Printf("[task][complete][err] invalid id: %v", err)
		c.String(http.StatusBadRequest, "invalid id")
		return
	}

	task, err := h.service.MarkComplete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][complete][err] id=%d: %v", id, err)
		c.String(http.StatusInternalServerError, "failed to update task")
		return
	}
	if task == nil {
		log.Printf("[task][complete][404] id=%d, nothing to do", id)
	} else {
		log.Printf("[task][complete][ok] id=%d", id)
	}
	redirectToList(c, token)
}

// POST /deleteCompleted with form value "filter"
func (h *TaskHandler) DeleteCompleted(c *gin.Context) {
	token := c.PostForm("filter")
	log.Printf("[task][deleteCompleted] call rid=%s", getRequestID(c))

	n, err := h.service.DeleteCompleted(c.Request.Context())
	if err != nil {
		log.Printf("[task][deleteCompleted][err] %v", err)
		c.String(http.StatusInternalServerError, "failed to delete tasks")
		return
	}
	log.Printf("[task][deleteCompleted][ok] deleted=%d", n)
	redirectToList(c, token)
}
