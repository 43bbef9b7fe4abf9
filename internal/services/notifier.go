package services

import (
	"context"
	"errors"
	"fmt"

	"tasklist/internal/models"
)

// Notifier is told about completed tasks.
type Notifier interface {
	TaskCompleted(ctx context.Context, task models.Task) error
}

// Notifiers fans out to every member in order; one failing member does not
// stop the rest.
type Notifiers []Notifier

func (ns Notifiers) TaskCompleted(ctx context.Context, task models.Task) error {
	var errs []error
	for _, n := range ns {
		if n == nil {
			continue
		}
		if err := n.TaskCompleted(ctx, task); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func completedText(task models.Task) string {
	due := "n/a"
	if task.DueDate != nil {
		due = task.DueDate.Format("02/01/2006")
	}
	category := task.CategoryName
	if category == "" {
		category = task.CategoryID
	}
	return fmt.Sprintf("Task #%d completed: %s (category: %s, due: %s)", task.ID, task.Description, category, due)
}
