// Package board derives the Kanban column/task layout from statuses and
// tasks. The projection is a pure function of both result sets, so callers
// may fetch them in any order.
package board

import (
	"sort"

	"github.com/brunovale/prancheta/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column is one Kanban column: a status and its tasks in display order.
type Column struct {
	Status *domain.Status
	Tasks  []*domain.Task
}

// Board is the derived layout for one list or sprint node.
type Board struct {
	Node    *domain.Node
	Columns []Column
}

// Progress tiers, lower sorts first: done (100) before in-progress (1-99)
// before not-started (0 or nil). An explicit bucket rank avoids the
// boundary bugs a naive numeric comparator invites at 0 and 100.
const (
	tierDone = iota
	tierInProgress
	tierNotStarted
)

func progressTier(t *domain.Task) int {
	switch p := t.ProgressValue(); {
	case p == 100:
		return tierDone
	case p > 0 && p < 100:
		return tierInProgress
	default:
		return tierNotStarted
	}
}

// Sorter orders tasks within a column using locale-aware name collation
// inside each progress tier.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter builds a Sorter collating names for the given locale.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// SortTasks sorts tasks in place: done first, then in-progress, then
// not-started; names compared within a tier.
func (s *Sorter) SortTasks(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ti, tj := progressTier(tasks[i]), progressTier(tasks[j])
		if ti != tj {
			return ti < tj
		}
		return s.collator.CompareString(tasks[i].Name, tasks[j].Name) < 0
	})
}

// Build groups tasks into one column per status. Statuses with no tasks
// still yield an empty column. Columns follow the statuses slice, which
// the repository returns in ascending order_index with insertion order
// breaking ties.
func (s *Sorter) Build(statuses []*domain.Status, tasks []*domain.Task) []Column {
	byStatus := make(map[string][]*domain.Task, len(statuses))
	for _, t := range tasks {
		byStatus[t.StatusID] = append(byStatus[t.StatusID], t)
	}

	columns := make([]Column, 0, len(statuses))
	for _, st := range statuses {
		colTasks := byStatus[st.ID]
		s.SortTasks(colTasks)
		columns = append(columns, Column{Status: st, Tasks: colTasks})
	}
	return columns
}
