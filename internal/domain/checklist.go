package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChecklistItem is owned exclusively by one task and is removed by the
// store when the task row is deleted.
type ChecklistItem struct {
	ID        string
	TaskID    string
	Content   string
	Checked   bool
	CreatedAt time.Time
}

func (c *ChecklistItem) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("checklist item content is required: %w", ErrValidation)
	}
	if c.TaskID == "" {
		return fmt.Errorf("checklist item task is required: %w", ErrValidation)
	}
	return nil
}
