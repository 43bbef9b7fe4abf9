package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tasklist/internal/models"
)

// Generator renders printable task lists.
type Generator interface {
	RenderTaskList(w io.Writer, data TaskListData) error
}

type TaskListData struct {
	Title       string
	FilterLabel string
	Tasks       []models.Task
	GeneratedAt time.Time
}

// TaskListGenerator uses the core Helvetica font; text is translated to
// cp1252 so Portuguese accents survive.
type TaskListGenerator struct {
	Author string
}

func NewTaskListGenerator() *TaskListGenerator {
	return &TaskListGenerator{Author: "tasklist"}
}

var columns = []struct {
	title string
	width float64
}{
	{"#", 12},
	{"Description", 80},
	{"Category", 30},
	{"Due", 25},
	{"Status", 23},
}

func (g *TaskListGenerator) RenderTaskList(w io.Writer, data TaskListData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr(data.Title), false)
	pdf.SetAuthor(g.Author, false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(data.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	sub := data.GeneratedAt.Format("02/01/2006 15:04")
	if data.FilterLabel != "" {
		sub = data.FilterLabel + "  |  " + sub
	}
	pdf.CellFormat(0, 6, tr(sub), "", 1, "L", false, 0, "")
	g.hr(pdf)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(data.Tasks) == 0 {
		pdf.CellFormat(0, 7, "No tasks.", "1", 1, "C", false, 0, "")
	}
	for _, t := range data.Tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("02/01/2006")
		}
		category := t.CategoryName
		if category == "" {
			category = t.CategoryID
		}
		status := t.StatusName
		if status == "" {
			status = t.StatusID
		}
		cells := []string{fmt.Sprintf("%d", t.ID), truncate(t.Description, 48), category, due, status}
		for i, col := range columns {
			pdf.CellFormat(col.width, 7, tr(cells[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func (g *TaskListGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(15, y, 195, y)
	pdf.SetY(y + 3)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
