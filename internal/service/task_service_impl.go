package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	nodes    repository.NodeRepo
	statuses repository.StatusRepo
}

func NewTaskService(tasks repository.TaskRepo, nodes repository.NodeRepo, statuses repository.StatusRepo) TaskService {
	return &taskService{tasks: tasks, nodes: nodes, statuses: statuses}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	t.CreatedAt = time.Now().UTC()
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.validatePlacement(ctx, t); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByNode(ctx context.Context, listID string) ([]*domain.Task, error) {
	return s.tasks.ListByNode(ctx, listID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.validatePlacement(ctx, t); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// validatePlacement checks that the container is a taskable node and
// that the status belongs to the container's project.
func (s *taskService) validatePlacement(ctx context.Context, t *domain.Task) error {
	node, err := s.nodes.GetByID(ctx, t.ListID)
	if err != nil {
		return err
	}
	if node.IsFolder() {
		return fmt.Errorf("node %s is a folder and cannot hold tasks: %w", node.ID, domain.ErrValidation)
	}
	status, err := s.statuses.GetByID(ctx, t.StatusID)
	if err != nil {
		return err
	}
	if status.ProjectID != node.ProjectID {
		return fmt.Errorf("status %s belongs to another project: %w", status.ID, domain.ErrValidation)
	}
	return nil
}
