package domain

import (
	"fmt"
	"strings"
	"time"
)

type Project struct {
	ID        string
	Name      string
	Color     string
	UserID    string
	CreatedAt time.Time
}

// Validate checks the fields a project needs before any store call.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required: %w", ErrValidation)
	}
	if p.UserID == "" {
		return fmt.Errorf("project owner is required: %w", ErrValidation)
	}
	return nil
}
