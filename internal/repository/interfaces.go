package repository

import (
	"context"

	"github.com/brunovale/prancheta/internal/domain"
)

// The repositories are the record store gateway: thin CRUD-plus-query
// contracts over the five record kinds. Services depend on these
// interfaces only; the SQLite implementations are one possible store.

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type NodeRepo interface {
	Create(ctx context.Context, n *domain.Node) error
	GetByID(ctx context.Context, id string) (*domain.Node, error)
	// ListByProject returns every node of the project as a flat list,
	// regardless of folder nesting.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Node, error)
	// ListChildren returns the direct children of a folder (one level).
	ListChildren(ctx context.Context, folderID string) ([]*domain.Node, error)
	// ListRoots returns the project's top-level nodes (folder_id IS NULL).
	ListRoots(ctx context.Context, projectID string) ([]*domain.Node, error)
	Update(ctx context.Context, n *domain.Node) error
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type StatusRepo interface {
	Create(ctx context.Context, s *domain.Status) error
	GetByID(ctx context.Context, id string) (*domain.Status, error)
	// GetByName resolves the project-scoped unique (project_id, name) pair;
	// returns domain.ErrNotFound when no such status exists.
	GetByName(ctx context.Context, projectID, name string) (*domain.Status, error)
	// ListByProject returns statuses ordered by order_index, insertion
	// order breaking ties.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Status, error)
	Update(ctx context.Context, s *domain.Status) error
	// UpsertMany replaces the ordering snapshot for the supplied set,
	// keyed by id. Omitted rows keep their stale order_index.
	UpsertMany(ctx context.Context, statuses []*domain.Status) error
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByNode(ctx context.Context, listID string) ([]*domain.Task, error)
	CountByStatus(ctx context.Context, statusID string) (int, error)
	// ReassignStatus moves every task referencing fromStatus to toStatus.
	ReassignStatus(ctx context.Context, fromStatus, toStatus string) error
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	DeleteByNode(ctx context.Context, listID string) error
}

type ChecklistRepo interface {
	Create(ctx context.Context, item *domain.ChecklistItem) error
	GetByID(ctx context.Context, id string) (*domain.ChecklistItem, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.ChecklistItem, error)
	SetChecked(ctx context.Context, id string, checked bool) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}
