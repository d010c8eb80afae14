package testutil

import (
	"time"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectColor(c string) ProjectOption {
	return func(p *domain.Project) {
		p.Color = c
	}
}

func WithProjectUser(userID string) ProjectOption {
	return func(p *domain.Project) {
		p.UserID = userID
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		UserID:    "test-user",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Node options
type NodeOption func(*domain.Node)

func WithNodeType(t domain.NodeType) NodeOption {
	return func(n *domain.Node) {
		n.Type = t
	}
}

func WithFolderID(id string) NodeOption {
	return func(n *domain.Node) {
		n.FolderID = &id
	}
}

func WithNodeColor(color, colorName string) NodeOption {
	return func(n *domain.Node) {
		n.Color = color
		n.ColorName = colorName
	}
}

func WithSprintDates(start, end time.Time) NodeOption {
	return func(n *domain.Node) {
		n.StartDate = &start
		n.EndDate = &end
	}
}

func NewTestNode(projectID, name string, opts ...NodeOption) *domain.Node {
	n := &domain.Node{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Type:      domain.NodeList,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Status options
type StatusOption func(*domain.Status)

func WithStatusColor(hex string) StatusOption {
	return func(s *domain.Status) {
		s.ColorHex = hex
	}
}

func WithStatusOrder(i int) StatusOption {
	return func(s *domain.Status) {
		s.OrderIndex = i
	}
}

func NewTestStatus(projectID, name string, opts ...StatusOption) *domain.Status {
	s := &domain.Status{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		ColorHex:  domain.DefaultStatusColor,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task options
type TaskOption func(*domain.Task)

func WithProgress(p int) TaskOption {
	return func(t *domain.Task) {
		t.Progress = &p
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithAssignee(a string) TaskOption {
	return func(t *domain.Task) {
		t.Assignee = a
	}
}

func WithTaskDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func NewTestTask(listID, statusID, name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		ListID:    listID,
		StatusID:  statusID,
		UserID:    "test-user",
		Name:      name,
		Priority:  domain.PriorityMedium,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Checklist options
type ChecklistOption func(*domain.ChecklistItem)

func WithChecked() ChecklistOption {
	return func(c *domain.ChecklistItem) {
		c.Checked = true
	}
}

func NewTestChecklistItem(taskID, content string, opts ...ChecklistOption) *domain.ChecklistItem {
	c := &domain.ChecklistItem{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestProfile returns a profile fixture on the given plan.
func NewTestProfile(userID string, plan domain.Plan) *domain.Profile {
	return &domain.Profile{
		UserID:   userID,
		FullName: "Test User",
		Plan:     plan,
	}
}
