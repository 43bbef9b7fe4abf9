package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tasklist/internal/models"
)

func TestRenderTaskListWritesPDF(t *testing.T) {
	due := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	err := NewTaskListGenerator().RenderTaskList(&buf, TaskListData{
		Title:       "Tarefas",
		FilterLabel: "casa-todos-aberto",
		GeneratedAt: due,
		Tasks: []models.Task{
			{ID: 1, Description: "Lavar a louça", DueDate: &due, CategoryID: "casa", CategoryName: "Casa", StatusID: "aberto", StatusName: "Aberto"},
			{ID: 2, Description: strings.Repeat("muito longo ", 10), CategoryID: "exercicio", StatusID: "completo"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRenderEmptyTaskList(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTaskListGenerator().RenderTaskList(&buf, TaskListData{Title: "Empty", GeneratedAt: time.Now()}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("exercício físico", 5); got != "exer…" {
		t.Fatalf("got %q", got)
	}
}
