package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/ordering"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/google/uuid"
)

type statusService struct {
	statuses repository.StatusRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewStatusService(statuses repository.StatusRepo, tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) StatusService {
	return &statusService{
		statuses: statuses,
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *statusService) Ensure(ctx context.Context, projectID, name, colorHex string) (*domain.Status, error) {
	if colorHex == "" {
		colorHex = domain.DefaultStatusColor
	}
	st := &domain.Status{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		ColorHex:  colorHex,
		CreatedAt: time.Now().UTC(),
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.statuses.GetByName(ctx, projectID, name)
	if err == nil {
		// Reuse as-is; the caller's color is intentionally ignored.
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// Look-up-then-insert is not atomic; the unique (project_id, name)
	// index turns a concurrent duplicate into a store error rather than
	// a second row.
	if err := s.statuses.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *statusService) GetByID(ctx context.Context, id string) (*domain.Status, error) {
	return s.statuses.GetByID(ctx, id)
}

func (s *statusService) ListByProject(ctx context.Context, projectID string) ([]*domain.Status, error) {
	return s.statuses.ListByProject(ctx, projectID)
}

func (s *statusService) Update(ctx context.Context, st *domain.Status) error {
	if err := st.Validate(); err != nil {
		return err
	}
	return s.statuses.Update(ctx, st)
}

func (s *statusService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.delete(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "status_delete",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"status_id": id},
		StartedAt: start,
	})
	return err
}

func (s *statusService) delete(ctx context.Context, id string) error {
	st, err := s.statuses.GetByID(ctx, id)
	if err != nil {
		return err
	}

	all, err := s.statuses.ListByProject(ctx, st.ProjectID)
	if err != nil {
		return err
	}
	var others []*domain.Status
	for _, other := range all {
		if other.ID != id {
			others = append(others, other)
		}
	}

	if len(others) == 0 {
		// Last status of the project: refuse while tasks reference it.
		count, err := s.tasks.CountByStatus(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("cannot delete the last status of a project while %d task(s) reference it: %w",
				count, domain.ErrConstraint)
		}
		return s.statuses.Delete(ctx, id)
	}

	// Move every referencing task to the lowest-ordered survivor, then
	// delete. The two steps commit independently: a failure in between
	// leaves the old row present but unreferenced, and re-running the
	// delete finishes the job.
	if err := s.tasks.ReassignStatus(ctx, id, others[0].ID); err != nil {
		return err
	}
	return s.statuses.Delete(ctx, id)
}

func (s *statusService) Reorder(ctx context.Context, projectID, draggedID, targetID string) error {
	statuses, err := s.statuses.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}

	reordered, ok := ordering.Reordered(statuses, draggedID, targetID)
	if !ok {
		return nil
	}

	// The whole snapshot is written in one transaction so a failed
	// reorder never persists a torn permutation. Partial sets would
	// leave stale indices on omitted rows, hence the full set.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStatusRepo(tx).UpsertMany(ctx, reordered)
	})
}
