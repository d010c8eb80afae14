// Package ordering converts a drag-and-drop permutation into contiguous
// persisted order indices.
package ordering

import "github.com/brunovale/prancheta/internal/domain"

// Move removes the element at from and reinserts it at to, preserving the
// relative order of all untouched elements. Out-of-range or equal indices
// return the sequence unchanged.
func Move[T any](seq []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(seq) || to >= len(seq) {
		return seq
	}
	out := make([]T, 0, len(seq))
	out = append(out, seq[:from]...)
	out = append(out, seq[from+1:]...)
	out = append(out[:to], append([]T{seq[from]}, out[to:]...)...)
	return out
}

// Reordered applies a drag of draggedID onto targetID to the given status
// sequence and reassigns order_index as the 0-based position in the result.
// The boolean is false when the drag is a no-op (same position, or either
// id absent from the sequence); in that case no statuses are touched and
// the caller must not persist anything.
func Reordered(statuses []*domain.Status, draggedID, targetID string) ([]*domain.Status, bool) {
	from, to := -1, -1
	for i, s := range statuses {
		switch s.ID {
		case draggedID:
			from = i
		case targetID:
			to = i
		}
	}
	if from == -1 || to == -1 || from == to {
		return nil, false
	}

	moved := Move(statuses, from, to)
	out := make([]*domain.Status, len(moved))
	for i, s := range moved {
		c := *s
		c.OrderIndex = i
		out[i] = &c
	}
	return out, true
}
