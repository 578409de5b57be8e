package definition

import (
	"fmt"
	"slices"

	"github.com/gclaussn/go-bpmn-model/model"
)

// ElementContainer owns a [FlowElementContainer]: a [*ProcessDefinition] or a [*SubProcess].
type ElementContainer interface {
	Name() string
	Container() *FlowElementContainer
}

// FlowElementContainer is the frozen, indexed graph of a process or a sub process.
// It is created by a [ContainerBuilder] and exposes queries only.
//
// Every flow node is part of its typed collection, the ID index and the name index.
// Lookups by ID, by name, of gateways and of transitions search the container first
// and then the nested containers of sub processes, in the order the sub processes were added.
// The first match wins.
type FlowElementContainer struct {
	elementContainer ElementContainer
	root             bool

	flowNodes      []FlowNode
	flowNodeById   map[int64]int
	flowNodeByName map[string]int

	activities              []Activity
	subProcesses            []*SubProcess
	gateways                []*Gateway
	startEvents             []*StartEvent
	intermediateCatchEvents []*IntermediateCatchEvent
	intermediateThrowEvents []*IntermediateThrowEvent
	endEvents               []*EndEvent

	boundaryEvents      []*BoundaryEvent
	boundaryEventByName map[string]int

	transitions      []*Transition
	transitionByName map[string]int

	connectors      []*Connector
	connectorByName map[string]int

	dataDefinitions         []DataDefinition
	businessDataDefinitions []BusinessDataDefinition
	documents               []DocumentDefinition

	containsInclusiveGateway bool
}

func newFlowElementContainer(root bool) *FlowElementContainer {
	return &FlowElementContainer{
		root: root,

		flowNodeById:        make(map[int64]int),
		flowNodeByName:      make(map[string]int),
		boundaryEventByName: make(map[string]int),
		transitionByName:    make(map[string]int),
		connectorByName:     make(map[string]int),
	}
}

// ElementContainer returns the owner of the container.
// It is nil for a root container, which has been built without a process definition.
func (c *FlowElementContainer) ElementContainer() ElementContainer {
	return c.elementContainer
}

// IsRoot determines if the container is the top-level container of a process.
func (c *FlowElementContainer) IsRoot() bool {
	return c.root
}

// ContainsInclusiveGateway determines if an inclusive gateway has been added to the container.
func (c *FlowElementContainer) ContainsInclusiveGateway() bool {
	return c.containsInclusiveGateway
}

// FlowNodeById returns the flow node with the given ID or nil.
func (c *FlowElementContainer) FlowNodeById(id int64) FlowNode {
	if i, ok := c.flowNodeById[id]; ok {
		return c.flowNodes[i]
	}
	for _, subProcess := range c.subProcesses {
		if flowNode := subProcess.container.FlowNodeById(id); flowNode != nil {
			return flowNode
		}
	}
	return nil
}

// FlowNodeByName returns the flow node with the given name or nil.
func (c *FlowElementContainer) FlowNodeByName(name string) FlowNode {
	if i, ok := c.flowNodeByName[name]; ok {
		return c.flowNodes[i]
	}
	for _, subProcess := range c.subProcesses {
		if flowNode := subProcess.container.FlowNodeByName(name); flowNode != nil {
			return flowNode
		}
	}
	return nil
}

// Gateway returns the gateway with the given name or nil.
func (c *FlowElementContainer) Gateway(name string) *Gateway {
	if i, ok := c.flowNodeByName[name]; ok {
		if gateway, ok := c.flowNodes[i].(*Gateway); ok {
			return gateway
		}
	}
	for _, subProcess := range c.subProcesses {
		if gateway := subProcess.container.Gateway(name); gateway != nil {
			return gateway
		}
	}
	return nil
}

// Transition returns the transition with the given name or nil.
func (c *FlowElementContainer) Transition(name string) *Transition {
	if i, ok := c.transitionByName[name]; ok {
		return c.transitions[i]
	}
	for _, subProcess := range c.subProcesses {
		if transition := subProcess.container.Transition(name); transition != nil {
			return transition
		}
	}
	return nil
}

// Connector returns the container-level connector with the given name or nil. Nested containers are not searched.
func (c *FlowElementContainer) Connector(name string) *Connector {
	if i, ok := c.connectorByName[name]; ok {
		return c.connectors[i]
	}
	return nil
}

// BoundaryEvent returns the boundary event with the given name or nil. Nested containers are not searched.
func (c *FlowElementContainer) BoundaryEvent(name string) *BoundaryEvent {
	if i, ok := c.boundaryEventByName[name]; ok {
		return c.boundaryEvents[i]
	}
	return nil
}

// Source returns the flow node, the transition starts at.
func (c *FlowElementContainer) Source(t *Transition) FlowNode {
	return c.localFlowNode(t.sourceId)
}

// Target returns the flow node, the transition leads to.
func (c *FlowElementContainer) Target(t *Transition) FlowNode {
	return c.localFlowNode(t.targetId)
}

func (c *FlowElementContainer) localFlowNode(id int64) FlowNode {
	if i, ok := c.flowNodeById[id]; ok {
		return c.flowNodes[i]
	}
	return nil
}

// FlowNodes returns all flow nodes of the container, including boundary events, in insertion order.
func (c *FlowElementContainer) FlowNodes() []FlowNode {
	return slices.Clone(c.flowNodes)
}

func (c *FlowElementContainer) Activities() []Activity {
	return slices.Clone(c.activities)
}

func (c *FlowElementContainer) Gateways() []*Gateway {
	return slices.Clone(c.gateways)
}

func (c *FlowElementContainer) StartEvents() []*StartEvent {
	return slices.Clone(c.startEvents)
}

func (c *FlowElementContainer) IntermediateCatchEvents() []*IntermediateCatchEvent {
	return slices.Clone(c.intermediateCatchEvents)
}

func (c *FlowElementContainer) IntermediateThrowEvents() []*IntermediateThrowEvent {
	return slices.Clone(c.intermediateThrowEvents)
}

func (c *FlowElementContainer) EndEvents() []*EndEvent {
	return slices.Clone(c.endEvents)
}

func (c *FlowElementContainer) BoundaryEvents() []*BoundaryEvent {
	return slices.Clone(c.boundaryEvents)
}

func (c *FlowElementContainer) Transitions() []*Transition {
	return slices.Clone(c.transitions)
}

// SubProcessContainers returns the nested containers of the container's sub processes. Deeper levels are not included.
func (c *FlowElementContainer) SubProcessContainers() []*FlowElementContainer {
	containers := make([]*FlowElementContainer, len(c.subProcesses))
	for i, subProcess := range c.subProcesses {
		containers[i] = subProcess.container
	}
	return containers
}

func (c *FlowElementContainer) Connectors() []*Connector {
	return slices.Clone(c.connectors)
}

func (c *FlowElementContainer) ConnectorsByEvent(event model.ConnectorEvent) []*Connector {
	return filterConnectors(c.connectors, event)
}

func (c *FlowElementContainer) HasConnectors() bool {
	return len(c.connectors) != 0
}

func (c *FlowElementContainer) DataDefinitions() []DataDefinition {
	return slices.Clone(c.dataDefinitions)
}

func (c *FlowElementContainer) BusinessDataDefinitions() []BusinessDataDefinition {
	return slices.Clone(c.businessDataDefinitions)
}

func (c *FlowElementContainer) Documents() []DocumentDefinition {
	return slices.Clone(c.documents)
}

// FlowNodeRef addresses a flow node unambiguously.
// Path contains the IDs of the sub processes, leading from the root container to the container of the flow node.
type FlowNodeRef struct {
	Path []int64
	Id   int64
}

// Ref returns a reference to the flow node with the given ID, searched like [FlowElementContainer.FlowNodeById].
// If no such flow node exists, false is returned.
func (c *FlowElementContainer) Ref(id int64) (FlowNodeRef, bool) {
	var ref FlowNodeRef
	var found bool
	c.Walk(func(path []int64, flowNode FlowNode) bool {
		if flowNode.Id() == id {
			ref = FlowNodeRef{Path: slices.Clone(path), Id: id}
			found = true
			return false
		}
		return true
	})
	return ref, found
}

// Resolve returns the flow node, a reference points to. Unlike the lookups, only the addressed container is searched.
// If the path or the ID cannot be resolved, an error of type [ErrorNotFound] is returned.
func (c *FlowElementContainer) Resolve(ref FlowNodeRef) (FlowNode, error) {
	container := c
	for _, id := range ref.Path {
		subProcess, ok := container.localFlowNode(id).(*SubProcess)
		if !ok {
			return nil, Error{
				Type:   ErrorNotFound,
				Title:  "failed to resolve flow node",
				Detail: fmt.Sprintf("path segment %d is not a sub process", id),
			}
		}
		container = subProcess.container
	}

	flowNode := container.localFlowNode(ref.Id)
	if flowNode == nil {
		return nil, Error{
			Type:   ErrorNotFound,
			Title:  "failed to resolve flow node",
			Detail: fmt.Sprintf("flow node %d does not exist", ref.Id),
		}
	}
	return flowNode, nil
}

// Walk visits all flow nodes depth-first, in the same order the lookups search.
// A sub process is visited before the flow nodes of its nested container.
// The path contains the IDs of the enclosing sub processes. It must not be retained.
// Walk stops, when fn returns false, and reports if all flow nodes have been visited.
func (c *FlowElementContainer) Walk(fn func(path []int64, flowNode FlowNode) bool) bool {
	return c.walk(nil, fn)
}

func (c *FlowElementContainer) walk(path []int64, fn func([]int64, FlowNode) bool) bool {
	for _, flowNode := range c.flowNodes {
		if !fn(path, flowNode) {
			return false
		}
	}
	for _, subProcess := range c.subProcesses {
		if !subProcess.container.walk(append(path, subProcess.id), fn) {
			return false
		}
	}
	return true
}
