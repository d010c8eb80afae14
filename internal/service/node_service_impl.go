package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/google/uuid"
)

type nodeService struct {
	nodes    repository.NodeRepo
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewNodeService(nodes repository.NodeRepo, tasks repository.TaskRepo, observers ...UseCaseObserver) NodeService {
	return &nodeService{
		nodes:    nodes,
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *nodeService) Create(ctx context.Context, n *domain.Node) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()
	if err := n.Validate(); err != nil {
		return err
	}
	if err := s.validateParent(ctx, n); err != nil {
		return err
	}
	return s.nodes.Create(ctx, n)
}

func (s *nodeService) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	return s.nodes.GetByID(ctx, id)
}

func (s *nodeService) ListByProject(ctx context.Context, projectID string) ([]*domain.Node, error) {
	return s.nodes.ListByProject(ctx, projectID)
}

func (s *nodeService) ListChildren(ctx context.Context, projectID string, folderID *string) ([]*domain.Node, error) {
	if folderID == nil {
		return s.nodes.ListRoots(ctx, projectID)
	}
	return s.nodes.ListChildren(ctx, *folderID)
}

func (s *nodeService) ListKind(ctx context.Context, projectID string, kind domain.NodeType, folderID *string) ([]*domain.Node, error) {
	children, err := s.ListChildren(ctx, projectID, folderID)
	if err != nil {
		return nil, err
	}
	var out []*domain.Node
	for _, n := range children {
		if n.Type == kind {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *nodeService) Update(ctx context.Context, n *domain.Node) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if err := s.validateParent(ctx, n); err != nil {
		return err
	}
	return s.nodes.Update(ctx, n)
}

func (s *nodeService) Delete(ctx context.Context, id string) error {
	n, err := s.nodes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.IsFolder() {
		return s.DeleteFolderCascade(ctx, id)
	}
	return s.nodes.Delete(ctx, id)
}

func (s *nodeService) DeleteFolderCascade(ctx context.Context, folderID string) error {
	start := time.Now()
	err := s.deleteFolderCascade(ctx, folderID)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "folder_cascade_delete",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"folder_id": folderID},
		StartedAt: start,
	})
	return err
}

// deleteFolderCascade removes a folder's contents depth-first, children
// before parent: lists and sprints lose their tasks and are deleted
// outright, subfolders recurse. Steps commit independently; a failure
// aborts with the store error and the cascade is safe to re-run.
func (s *nodeService) deleteFolderCascade(ctx context.Context, folderID string) error {
	children, err := s.nodes.ListChildren(ctx, folderID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if child.IsFolder() {
			if err := s.deleteFolderCascade(ctx, child.ID); err != nil {
				return err
			}
			continue
		}
		if err := s.tasks.DeleteByNode(ctx, child.ID); err != nil {
			return err
		}
		if err := s.nodes.Delete(ctx, child.ID); err != nil {
			return err
		}
	}
	return s.nodes.Delete(ctx, folderID)
}

// validateParent enforces the tree rules the store cannot express: a
// folder_id must reference a pasta-type node of the same project, and a
// folder may not be moved under its own descendant.
func (s *nodeService) validateParent(ctx context.Context, n *domain.Node) error {
	if n.FolderID == nil {
		return nil
	}
	if *n.FolderID == n.ID {
		return fmt.Errorf("node cannot be its own parent: %w", domain.ErrValidation)
	}

	parent, err := s.nodes.GetByID(ctx, *n.FolderID)
	if err != nil {
		return err
	}
	if !parent.IsFolder() {
		return fmt.Errorf("parent %s is a %s, not a folder: %w",
			parent.ID, parent.Type, domain.ErrValidation)
	}
	if parent.ProjectID != n.ProjectID {
		return fmt.Errorf("parent folder belongs to another project: %w", domain.ErrValidation)
	}

	// Walk up from the parent; hitting the node itself means the move
	// would close a cycle.
	seen := map[string]bool{n.ID: true}
	for cur := parent; cur.FolderID != nil; {
		if seen[*cur.FolderID] {
			return fmt.Errorf("moving node %s under %s would create a cycle: %w",
				n.ID, parent.ID, domain.ErrValidation)
		}
		seen[cur.ID] = true
		next, err := s.nodes.GetByID(ctx, *cur.FolderID)
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}
