package service

import (
	"context"
	"time"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/google/uuid"
)

type checklistService struct {
	items repository.ChecklistRepo
	tasks repository.TaskRepo
}

func NewChecklistService(items repository.ChecklistRepo, tasks repository.TaskRepo) ChecklistService {
	return &checklistService{items: items, tasks: tasks}
}

func (s *checklistService) Add(ctx context.Context, taskID, content string) (*domain.ChecklistItem, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	item := &domain.ChecklistItem{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *checklistService) ListByTask(ctx context.Context, taskID string) ([]*domain.ChecklistItem, error) {
	return s.items.ListByTask(ctx, taskID)
}

func (s *checklistService) Toggle(ctx context.Context, itemID string) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	return s.items.SetChecked(ctx, itemID, !item.Checked)
}

func (s *checklistService) Remove(ctx context.Context, itemID string) error {
	return s.items.Delete(ctx, itemID)
}
