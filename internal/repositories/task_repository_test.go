package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tasklist/internal/database"
	"tasklist/internal/models"
)

func newTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	db, err := database.Open(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db, func() {
		_ = db.Close()
	}
}

func date(y int, m time.Month, d int) *time.Time {
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &v
}

func TestTaskRepositoryStoreAndFind(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := &models.Task{
		Description: "Pagar contas",
		DueDate:     date(2024, time.May, 10),
		CategoryID:  "casa",
		StatusID:    models.StatusOpen,
	}
	if err := repo.Store(ctx, task); err != nil {
		t.Fatalf("store: %v", err)
	}
	if task.ID == 0 {
		t.Fatalf("expected task ID to be set")
	}

	got, err := repo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatalf("expected task %d to exist", task.ID)
	}
	if got.Description != "Pagar contas" || got.CategoryID != "casa" || got.StatusID != models.StatusOpen {
		t.Fatalf("unexpected task %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(*task.DueDate) {
		t.Fatalf("due date mismatch: got %v want %v", got.DueDate, task.DueDate)
	}
	if got.CategoryName != "Casa" || got.StatusName != "Aberto" {
		t.Fatalf("expected joined names, got %q/%q", got.CategoryName, got.StatusName)
	}
}

func TestTaskRepositoryFindByIDMissing(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()

	got, err := NewTaskRepository(db).FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing task, got %+v", got)
	}
}

func TestTaskRepositoryFindAllOrdersByDueDate(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()
	repo := NewTaskRepository(db)
	ctx := context.Background()

	for _, tc := range []struct {
		desc string
		due  *time.Time
	}{
		{"later", date(2024, time.June, 1)},
		{"sooner", date(2024, time.May, 1)},
		{"middle", date(2024, time.May, 15)},
	} {
		if err := repo.Store(ctx, &models.Task{Description: tc.desc, DueDate: tc.due, CategoryID: "trabalho", StatusID: models.StatusOpen}); err != nil {
			t.Fatalf("store %s: %v", tc.desc, err)
		}
	}

	tasks, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	want := []string{"sooner", "middle", "later"}
	for i, task := range tasks {
		if task.Description != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, task.Description, want[i])
		}
	}
}

func TestTaskRepositoryUpdateAndDeleteByStatus(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()
	repo := NewTaskRepository(db)
	ctx := context.Background()

	done := &models.Task{Description: "done", DueDate: date(2024, time.May, 9), CategoryID: "casa", StatusID: models.StatusOpen}
	open := &models.Task{Description: "open", DueDate: date(2024, time.May, 10), CategoryID: "casa", StatusID: models.StatusOpen}
	for _, task := range []*models.Task{done, open} {
		if err := repo.Store(ctx, task); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	done.StatusID = models.StatusComplete
	if err := repo.Update(ctx, done); err != nil {
		t.Fatalf("update: %v", err)
	}

	n, err := repo.DeleteByStatus(ctx, models.StatusComplete)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted row, got %d", n)
	}

	tasks, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != open.ID {
		t.Fatalf("expected only the open task to remain, got %+v", tasks)
	}
}

func TestTaskRepositoryRejectsUnknownCategory(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()

	err := NewTaskRepository(db).Store(context.Background(), &models.Task{
		Description: "x", DueDate: date(2024, time.May, 10), CategoryID: "nope", StatusID: models.StatusOpen,
	})
	if err == nil {
		t.Fatalf("expected foreign key violation")
	}
}

func TestReferenceRepositories(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()
	ctx := context.Background()

	categories, err := NewCategoryRepository(db).FindAll(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(categories))
	}

	statuses := NewStatusRepository(db)
	all, err := statuses.FindAll(ctx)
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(all))
	}

	s, err := statuses.FindByID(ctx, models.StatusComplete)
	if err != nil || s == nil || s.Name != "Completo" {
		t.Fatalf("find completo: %+v, %v", s, err)
	}
	missing, err := NewCategoryRepository(db).FindByID(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing category, got %+v, %v", missing, err)
	}
}

func TestDateColumnScan(t *testing.T) {
	cases := []any{
		"2024-05-10",
		[]byte("2024-05-10"),
		"2024-05-10 00:00:00+00:00",
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	want := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	for _, src := range cases {
		var d dateColumn
		if err := d.Scan(src); err != nil {
			t.Fatalf("scan %v: %v", src, err)
		}
		if !d.Valid || !d.Time.Equal(want) {
			t.Fatalf("scan %v: got %+v", src, d)
		}
	}

	var d dateColumn
	if err := d.Scan(nil); err != nil || d.Valid {
		t.Fatalf("nil scan: %+v, %v", d, err)
	}
	if err := d.Scan("garbage"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}
