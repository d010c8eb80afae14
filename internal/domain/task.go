package domain

import (
	"fmt"
	"strings"
	"time"
)

type Task struct {
	ID          string
	ListID      string
	StatusID    string
	UserID      string
	Name        string
	Description string
	Assignee    string
	Priority    Priority
	DueDate     *time.Time
	Progress    *int // 0..100, nil treated as 0
	CreatedAt   time.Time
}

// ProgressValue returns the task's progress with nil coalesced to 0.
func (t *Task) ProgressValue() int {
	if t.Progress == nil {
		return 0
	}
	return *t.Progress
}

// Validate checks the fields a task needs before any store call.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required: %w", ErrValidation)
	}
	if t.ListID == "" {
		return fmt.Errorf("task list is required: %w", ErrValidation)
	}
	if t.StatusID == "" {
		return fmt.Errorf("task status is required: %w", ErrValidation)
	}
	if t.Priority != "" && !ValidPriorities[string(t.Priority)] {
		return fmt.Errorf("invalid priority %q: %w", t.Priority, ErrValidation)
	}
	if t.Progress != nil && (*t.Progress < 0 || *t.Progress > 100) {
		return fmt.Errorf("progress %d out of range 0-100: %w", *t.Progress, ErrValidation)
	}
	return nil
}
