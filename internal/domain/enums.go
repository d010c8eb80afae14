package domain

type NodeType string

const (
	NodeFolder NodeType = "pasta"
	NodeList   NodeType = "lista"
	NodeSprint NodeType = "sprint"
)

// ValidNodeTypes is the canonical set of accepted node type strings.
var ValidNodeTypes = map[string]bool{
	"pasta": true, "lista": true, "sprint": true,
}

// TaskContainerTypes are the node types that may hold tasks. Folders only
// hold other nodes.
var TaskContainerTypes = map[NodeType]bool{
	NodeList: true, NodeSprint: true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted task priorities.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanTrial   Plan = "TRIAL"
	PlanPremium Plan = "PREMIUM"
)

// ValidPlans is the canonical set of accepted plan strings.
var ValidPlans = map[string]bool{
	"FREE": true, "TRIAL": true, "PREMIUM": true,
}

// FreeProjectLimit caps projects for FREE-plan users, checked at project
// creation time.
const FreeProjectLimit = 1
