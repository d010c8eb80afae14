package service

import (
	"context"
	"fmt"

	"github.com/brunovale/prancheta/internal/board"
	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/repository"
	"golang.org/x/sync/errgroup"
)

type boardService struct {
	nodes    repository.NodeRepo
	statuses repository.StatusRepo
	tasks    repository.TaskRepo
	sorter   *board.Sorter
}

func NewBoardService(nodes repository.NodeRepo, statuses repository.StatusRepo, tasks repository.TaskRepo, sorter *board.Sorter) BoardService {
	return &boardService{nodes: nodes, statuses: statuses, tasks: tasks, sorter: sorter}
}

func (s *boardService) Board(ctx context.Context, nodeID string) (*board.Board, error) {
	node, err := s.nodes.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if node.IsFolder() {
		return nil, fmt.Errorf("node %s is a folder and has no board: %w", node.ID, domain.ErrValidation)
	}

	// Statuses and tasks are independent result sets; fetch them in
	// parallel and let the projection merge them.
	var (
		statuses []*domain.Status
		tasks    []*domain.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		statuses, err = s.statuses.ListByProject(gctx, node.ProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.ListByNode(gctx, node.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &board.Board{
		Node:    node,
		Columns: s.sorter.Build(statuses, tasks),
	}, nil
}
