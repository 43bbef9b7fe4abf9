// internal/services/task_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
)

// TaskList is everything the list view needs.
type TaskList struct {
	Filter     models.Filter            `json:"filter"`
	Tasks      []models.Task            `json:"tasks"`
	Categories []models.Category        `json:"categories"`
	Statuses   []models.Status          `json:"statuses"`
	DueBuckets []models.DueBucketOption `json:"dueBuckets"`
	Today      time.Time                `json:"today"`
}

// Lookups holds the reference data used by filter and form controls.
type Lookups struct {
	Categories []models.Category `json:"categories"`
	Statuses   []models.Status   `json:"statuses"`
}

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	List(ctx context.Context, filter models.Filter) (*TaskList, error)
	Lookups(ctx context.Context) (*Lookups, error)
	Add(ctx context.Context, task *models.Task) (models.ValidationErrors, error)
	MarkComplete(ctx context.Context, id int64) (*models.Task, error)
	DeleteCompleted(ctx context.Context) (int64, error)
}

type taskService struct {
	repo       repositories.TaskRepository
	categories repositories.CategoryRepository
	statuses   repositories.StatusRepository
	notifier   Notifier
	now        func() time.Time
}

// NewTaskService creates a new instance of TaskService. notifier may be nil.
func NewTaskService(
	repo repositories.TaskRepository,
	categories repositories.CategoryRepository,
	statuses repositories.StatusRepository,
	notifier Notifier,
) TaskService {
	return newTaskService(repo, categories, statuses, notifier)
}

func newTaskService(
	repo repositories.TaskRepository,
	categories repositories.CategoryRepository,
	statuses repositories.StatusRepository,
	notifier Notifier,
) *taskService {
	return &taskService{
		repo:       repo,
		categories: categories,
		statuses:   statuses,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (s *taskService) List(ctx context.Context, filter models.Filter) (*TaskList, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	lookups, err := s.Lookups(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	return &TaskList{
		Filter:     filter,
		Tasks:      filter.Apply(all, today),
		Categories: lookups.Categories,
		Statuses:   lookups.Statuses,
		DueBuckets: models.DueBucketOptions(),
		Today:      today,
	}, nil
}

func (s *taskService) Lookups(ctx context.Context) (*Lookups, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	statuses, err := s.statuses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return &Lookups{Categories: categories, Statuses: statuses}, nil
}

// Add validates and persists task. A non-empty ValidationErrors means nothing
// was written.
func (s *taskService) Add(ctx context.Context, task *models.Task) (models.ValidationErrors, error) {
	if verrs := models.ValidateTask(*task); len(verrs) > 0 {
		return verrs, nil
	}

	var verrs models.ValidationErrors
	category, err := s.categories.FindByID(ctx, task.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("lookup category: %w", err)
	}
	if category == nil {
		verrs = append(verrs, models.FieldError{Field: "categoryId", Message: "Unknown category."})
	}
	status, err := s.statuses.FindByID(ctx, task.StatusID)
	if err != nil {
		return nil, fmt.Errorf("lookup status: %w", err)
	}
	if status == nil {
		verrs = append(verrs, models.FieldError{Field: "statusId", Message: "Unknown status."})
	}
	if len(verrs) > 0 {
		return verrs, nil
	}

	if err := s.repo.Store(ctx, task); err != nil {
		return nil, fmt.Errorf("store task: %w", err)
	}
	task.CategoryName = category.Name
	task.StatusName = status.Name
	return nil, nil
}

// MarkComplete returns nil, nil when no task has the id.
func (s *taskService) MarkComplete(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	if task == nil {
		return nil, nil
	}

	task.StatusID = models.StatusComplete
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	updated, err := s.repo.FindByID(ctx, id)
	switch {
	case err != nil:
		log.Printf("[task][complete][refresh][err] id=%d: %v", id, err)
	case updated != nil:
		task = updated
	}

	if s.notifier != nil {
		if err := s.notifier.TaskCompleted(ctx, *task); err != nil {
			log.Printf("[task][complete][notify][err] id=%d: %v", id, err)
		}
	}
	return task, nil
}

func (s *taskService) DeleteCompleted(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteByStatus(ctx, models.StatusComplete)
	if err != nil {
		return 0, fmt.Errorf("delete completed: %w", err)
	}
	return n, nil
}
