package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"tasklist/internal/models"
	"tasklist/internal/pdf"
	"tasklist/internal/services"
)

type ExportHandler struct {
	service services.TaskService
	pdfGen  pdf.Generator
}

func NewExportHandler(service services.TaskService, pdfGen pdf.Generator) *ExportHandler {
	return &ExportHandler{service: service, pdfGen: pdfGen}
}

// GET /export and GET /export/:id
func (h *ExportHandler) TaskListPDF(c *gin.Context) {
	filter := models.ParseFilter(c.Param("id"))
	log.Printf("[export][pdf] call rid=%s filter=%q", getRequestID(c), filter.Token())

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[export][pdf][err] list: %v", err)
		c.String(http.StatusInternalServerError, "failed to retrieve tasks")
		return
	}

	var buf bytes.Buffer
	if err := h.pdfGen.RenderTaskList(&buf, pdf.TaskListData{
		Title:       "Tasks",
		FilterLabel: filter.Token(),
		Tasks:       list.Tasks,
		GeneratedAt: list.Today,
	}); err != nil {
		log.Printf("[export][pdf][err] render: %v", err)
		c.String(http.StatusInternalServerError, "failed to render pdf")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="tasks-%s.pdf"`, url.PathEscape(filter.Token())))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
