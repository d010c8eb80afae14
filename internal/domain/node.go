package domain

import (
	"fmt"
	"strings"
	"time"
)

// Node is the unified representation of a folder, list or sprint. All
// three live in the same table, distinguished by Type, and may nest under
// exactly one folder-type node via FolderID (nil means project root).
type Node struct {
	ID        string
	ProjectID string
	FolderID  *string
	Name      string
	Type      NodeType
	Color     string
	ColorName string

	// Sprint scheduling fields; unused for folders and plain lists.
	StartDate    *time.Time
	EndDate      *time.Time
	EffortType   string
	CustomEffort *int
	StartDay     *time.Time
	Duration     *int

	CreatedAt time.Time
}

// IsFolder reports whether the node can contain other nodes.
func (n *Node) IsFolder() bool {
	return n.Type == NodeFolder
}

// Validate checks the fields a node needs before any store call.
// Parent-reference rules (folder must exist, be a folder, and belong to
// the same project) need store access and live in the node service.
func (n *Node) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("node name is required: %w", ErrValidation)
	}
	if !ValidNodeTypes[string(n.Type)] {
		return fmt.Errorf("invalid node type %q: %w", n.Type, ErrValidation)
	}
	if n.ProjectID == "" {
		return fmt.Errorf("node project is required: %w", ErrValidation)
	}
	return nil
}
