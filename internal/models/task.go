// internal/models/task.go
package models

import "time"

// Task is a single to-do item.
type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description" validate:"required"`
	DueDate     *time.Time `json:"dueDate" validate:"required"`
	CategoryID  string     `json:"categoryId" validate:"required"`
	StatusID    string     `json:"statusId" validate:"required"`

	// Filled by list/get queries for display.
	CategoryName string `json:"categoryName,omitempty" validate:"-"`
	StatusName   string `json:"statusName,omitempty" validate:"-"`
}

// IsComplete reports whether the task carries the "completo" status.
func (t Task) IsComplete() bool {
	return t.StatusID == StatusComplete
}

// IsOverdue reports whether an open task is due before today.
func (t Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.IsComplete() {
		return false
	}
	return dateOnly(*t.DueDate).Before(dateOnly(today))
}
