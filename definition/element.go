package definition

import (
	"slices"

	"github.com/gclaussn/go-bpmn-model/model"
)

// NoTransitionIndex is returned by [FlowNode.TransitionIndex], when a flow node has no such incoming transition.
const NoTransitionIndex = -1

// FlowNode is implemented by all flow node variants of a [FlowElementContainer]:
//
//   - activities: [*AutomaticTask], [*UserTask], [*ManualTask], [*ReceiveTask], [*SendTask], [*CallActivity] and [*SubProcess]
//   - [*Gateway]
//   - events: [*StartEvent], [*IntermediateCatchEvent], [*IntermediateThrowEvent], [*EndEvent] and [*BoundaryEvent]
type FlowNode interface {
	Id() int64
	Name() string
	Description() string
	Type() model.FlowNodeType

	DisplayName() Expression
	DisplayDescription() Expression
	DisplayDescriptionAfterCompletion() Expression

	// Incoming returns the incoming transitions in declaration order.
	Incoming() []*Transition
	// Outgoing returns the outgoing transitions in declaration order.
	Outgoing() []*Transition
	// DefaultTransition returns the outgoing transition, taken when no condition matches, or nil.
	DefaultTransition() *Transition

	Connectors() []*Connector
	ConnectorsByEvent(model.ConnectorEvent) []*Connector

	HasConnectors() bool
	HasIncomingTransitions() bool
	HasOutgoingTransitions() bool

	IsBoundaryEvent() bool
	IsEventSubProcess() bool
	IsInterrupting() bool
	// IsStartable determines if the flow node can start a process or sub process instance.
	IsStartable() bool

	// TransitionIndex returns the 1-based position of the named transition among the incoming transitions
	// or [NoTransitionIndex].
	TransitionIndex(name string) int

	base() *flowNode
}

type flowNode struct {
	id          int64
	name        string
	description string
	nodeType    model.FlowNodeType

	displayName                       Expression
	displayDescription                Expression
	displayDescriptionAfterCompletion Expression

	incoming          []*Transition
	outgoing          []*Transition
	defaultTransition *Transition

	connectors []*Connector
}

func (n *flowNode) Id() int64 {
	return n.id
}

func (n *flowNode) Name() string {
	return n.name
}

func (n *flowNode) Description() string {
	return n.description
}

func (n *flowNode) Type() model.FlowNodeType {
	return n.nodeType
}

func (n *flowNode) DisplayName() Expression {
	return n.displayName
}

func (n *flowNode) DisplayDescription() Expression {
	return n.displayDescription
}

func (n *flowNode) DisplayDescriptionAfterCompletion() Expression {
	return n.displayDescriptionAfterCompletion
}

func (n *flowNode) Incoming() []*Transition {
	return slices.Clone(n.incoming)
}

func (n *flowNode) Outgoing() []*Transition {
	return slices.Clone(n.outgoing)
}

func (n *flowNode) DefaultTransition() *Transition {
	return n.defaultTransition
}

func (n *flowNode) Connectors() []*Connector {
	return slices.Clone(n.connectors)
}

func (n *flowNode) ConnectorsByEvent(event model.ConnectorEvent) []*Connector {
	return filterConnectors(n.connectors, event)
}

func (n *flowNode) HasConnectors() bool {
	return len(n.connectors) != 0
}

func (n *flowNode) HasIncomingTransitions() bool {
	return len(n.incoming) != 0
}

func (n *flowNode) HasOutgoingTransitions() bool {
	return len(n.outgoing) != 0
}

func (n *flowNode) IsBoundaryEvent() bool {
	return false
}

func (n *flowNode) IsEventSubProcess() bool {
	return false
}

func (n *flowNode) IsInterrupting() bool {
	return false
}

func (n *flowNode) IsStartable() bool {
	return len(n.incoming) == 0
}

func (n *flowNode) TransitionIndex(name string) int {
	for i, transition := range n.incoming {
		if transition.name == name {
			return i + 1
		}
	}
	return NoTransitionIndex
}

func (n *flowNode) String() string {
	return n.nodeType.String() + ":" + n.name
}

func (n *flowNode) base() *flowNode {
	return n
}

// Transition is a directed edge between two flow nodes of the same container.
type Transition struct {
	id        int64
	name      string
	sourceId  int64
	targetId  int64
	condition Expression
}

func (t *Transition) Id() int64 {
	return t.id
}

func (t *Transition) Name() string {
	return t.name
}

// SourceId returns the ID of the flow node, the transition starts at.
func (t *Transition) SourceId() int64 {
	return t.sourceId
}

// TargetId returns the ID of the flow node, the transition leads to.
func (t *Transition) TargetId() int64 {
	return t.targetId
}

func (t *Transition) Condition() Expression {
	return t.condition
}

func (t *Transition) HasCondition() bool {
	return !t.condition.IsZero()
}

func (t *Transition) String() string {
	return t.name
}
