package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	nodes    repository.NodeRepo
	statuses repository.StatusRepo
	tasks    repository.TaskRepo
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProjectService(
	projects repository.ProjectRepo,
	nodes repository.NodeRepo,
	statuses repository.StatusRepo,
	tasks repository.TaskRepo,
	profiles repository.ProfileRepo,
	observers ...UseCaseObserver,
) ProjectService {
	return &projectService{
		projects: projects,
		nodes:    nodes,
		statuses: statuses,
		tasks:    tasks,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()
	if err := p.Validate(); err != nil {
		return err
	}

	quota, err := s.projectQuota(ctx, p.UserID)
	if err != nil {
		return err
	}
	if quota > 0 {
		count, err := s.projects.CountByUser(ctx, p.UserID)
		if err != nil {
			return err
		}
		if count >= quota {
			return fmt.Errorf("plan allows at most %d project(s): %w", quota, domain.ErrConstraint)
		}
	}

	return s.projects.Create(ctx, p)
}

// projectQuota resolves the creation limit for a user. A missing profile
// gets the free tier treatment rather than an error.
func (s *projectService) projectQuota(ctx context.Context, userID string) (int, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.FreeProjectLimit, nil
		}
		return 0, err
	}
	return profile.ProjectQuota(), nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) ListByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.delete(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "project_cascade_delete",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"project_id": id},
		StartedAt: start,
	})
	return err
}

// delete tears a project down in dependency order: every node's tasks
// first, then the statuses, then the nodes in bulk, then the project
// row itself. Each step commits on its own, so a failure leaves the
// remainder in place and rerunning the delete finishes the job.
func (s *projectService) delete(ctx context.Context, id string) error {
	nodes, err := s.nodes.ListByProject(ctx, id)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if n.IsFolder() {
			continue
		}
		if err := s.tasks.DeleteByNode(ctx, n.ID); err != nil {
			return fmt.Errorf("deleting tasks of node %s: %w", n.ID, err)
		}
	}
	if err := s.statuses.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("deleting statuses: %w", err)
	}
	if err := s.nodes.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("deleting nodes: %w", err)
	}
	return s.projects.Delete(ctx, id)
}
