package service

import (
	"context"

	"github.com/brunovale/prancheta/internal/board"
	"github.com/brunovale/prancheta/internal/domain"
)

type ProjectService interface {
	// Create inserts a project after plan gating: FREE-plan owners are
	// capped at domain.FreeProjectLimit projects.
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	// Delete removes the project and everything under it: per-node task
	// cleanup, project statuses, all nodes, then the project row. Steps
	// commit independently; a partial failure is safe to retry.
	Delete(ctx context.Context, id string) error
}

type NodeService interface {
	Create(ctx context.Context, n *domain.Node) error
	GetByID(ctx context.Context, id string) (*domain.Node, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Node, error)
	// ListChildren returns one level of the tree: the project root when
	// folderID is nil, otherwise the folder's direct children.
	ListChildren(ctx context.Context, projectID string, folderID *string) ([]*domain.Node, error)
	// ListKind filters one level of the tree by node type.
	ListKind(ctx context.Context, projectID string, kind domain.NodeType, folderID *string) ([]*domain.Node, error)
	Update(ctx context.Context, n *domain.Node) error
	// Delete removes a node; folders cascade depth-first through their
	// contents, deleting each descendant's tasks along the way.
	Delete(ctx context.Context, id string) error
	DeleteFolderCascade(ctx context.Context, folderID string) error
}

type StatusService interface {
	// Ensure returns the project's status with the given name, creating
	// it when absent. An existing status is returned unchanged: its color
	// is NOT updated. New statuses default to order_index 0; reorder
	// afterwards for a stable position.
	Ensure(ctx context.Context, projectID, name, colorHex string) (*domain.Status, error)
	GetByID(ctx context.Context, id string) (*domain.Status, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Status, error)
	Update(ctx context.Context, s *domain.Status) error
	// Delete reassigns the status's tasks to the lowest-ordered remaining
	// status, then removes the row. Deleting the project's last status
	// fails with domain.ErrConstraint while tasks still reference it.
	Delete(ctx context.Context, id string) error
	// Reorder applies a drag of draggedID onto targetID and persists the
	// full recomputed set atomically. Unknown ids or a same-position drop
	// abandon the operation without touching the store.
	Reorder(ctx context.Context, projectID, draggedID, targetID string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByNode(ctx context.Context, listID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ChecklistService interface {
	Add(ctx context.Context, taskID, content string) (*domain.ChecklistItem, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.ChecklistItem, error)
	Toggle(ctx context.Context, itemID string) error
	Remove(ctx context.Context, itemID string) error
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type BoardService interface {
	// Board assembles the Kanban projection for one list or sprint node.
	Board(ctx context.Context, nodeID string) (*board.Board, error)
}
