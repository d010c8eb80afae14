package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultStatusColor is used when a caller supplies no color.
const DefaultStatusColor = "#3B82F6"

// Status is a named, colored Kanban column scoped to one project.
// Name is unique per project (case-sensitive exact match); OrderIndex
// defines column order, ties broken by insertion order.
type Status struct {
	ID         string
	ProjectID  string
	Name       string
	ColorHex   string
	OrderIndex int
	CreatedAt  time.Time
}

// Validate checks the fields a status needs before any store call.
func (s *Status) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("status name is required: %w", ErrValidation)
	}
	if s.ProjectID == "" {
		return fmt.Errorf("status project is required: %w", ErrValidation)
	}
	return nil
}
