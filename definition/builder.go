package definition

import (
	"fmt"
	"slices"
	"time"

	"github.com/gclaussn/go-bpmn-model/model"
)

// ContainerBuilder collects the elements of a [FlowElementContainer] and freezes them, when Build is called.
//
// Problems of the process model, like a duplicate flow node name, are collected as causes.
// Add methods return an error of type [ErrorProcessModel], containing the causes of the added element.
// Build returns all causes at once. Unsupported elements result in an error of type [ErrorBug], which aborts the build.
//
// A builder can be built only once. Afterwards all methods return an error of type [ErrorBug].
type ContainerBuilder struct {
	container *FlowElementContainer
	ids       *idGenerator
	options   Options
	pointer   string

	pendingFlowNodes   []pendingFlowNode
	pendingTransitions []pendingTransition
	transitionIds      map[int64]bool
	nested             []*ContainerBuilder

	causes []ErrorCause
	err    error
	built  bool
}

// pendingFlowNode holds the transition references of a flow node, which are resolved by Build.
type pendingFlowNode struct {
	node              *flowNode
	pointer           string
	incoming          []string
	outgoing          []string
	defaultTransition string
}

// pendingTransition holds the flow node references of a transition, which are resolved by Build.
type pendingTransition struct {
	transition *Transition
	pointer    string
	source     string
	target     string
}

// NewContainerBuilder creates a builder for a root container, which has no owning process definition.
func NewContainerBuilder(customizers ...func(*Options)) (*ContainerBuilder, error) {
	options, err := newOptions(customizers)
	if err != nil {
		return nil, err
	}

	return newContainerBuilder(newFlowElementContainer(true), newIdGenerator(options.IdOffset), options, ""), nil
}

func newContainerBuilder(container *FlowElementContainer, ids *idGenerator, options Options, pointer string) *ContainerBuilder {
	return &ContainerBuilder{
		container: container,
		ids:       ids,
		options:   options,
		pointer:   pointer,

		transitionIds: make(map[int64]bool),
	}
}

// AddActivity adds an activity, its boundary events and, in case of a sub process, its nested container.
func (b *ContainerBuilder) AddActivity(design model.Activity) error {
	if err := b.check(); err != nil {
		return err
	}

	var present bool
	switch design := design.(type) {
	case *model.AutomaticTask:
		present = design != nil
	case *model.CallActivity:
		present = design != nil
	case *model.ManualTask:
		present = design != nil
	case *model.ReceiveTask:
		present = design != nil
	case *model.SendTask:
		present = design != nil
	case *model.SubProcess:
		present = design != nil
	case *model.UserTask:
		present = design != nil
	default:
		return b.bug("failed to add activity", fmt.Sprintf("activity of type %T is not supported", design))
	}
	if !present {
		return b.bug("failed to add activity", fmt.Sprintf("activity of type %T is nil", design))
	}

	base := design.Base()
	pointer := elementPointer(b.pointer, base.Name)

	n := len(b.causes)

	node, ok := b.newFlowNode(pointer, &base.FlowNode, design.Type())
	if !ok {
		return b.result(n, "failed to add activity")
	}

	a := activity{
		flowNode:                node,
		dataDefinitions:         newDataDefinitions(base.DataDefinitions),
		businessDataDefinitions: newBusinessDataDefinitions(base.BusinessDataDefinitions),
		operations:              newOperations(base.Operations),
		loop:                    b.newLoopCharacteristics(pointer, base),
	}

	var (
		added      Activity
		subProcess *SubProcess
	)

	switch design := design.(type) {
	case *model.AutomaticTask:
		added = &AutomaticTask{activity: a}
	case *model.CallActivity:
		callableElementType := design.CallableElementType
		if callableElementType == 0 {
			callableElementType = model.CallableProcess
		}

		added = &CallActivity{
			activity:               a,
			callableElement:        b.expression(pointer, design.CallableElement),
			callableElementVersion: b.expression(pointer, design.CallableElementVersion),
			callableElementType:    callableElementType,
			dataInputOperations:    newOperations(design.DataInputOperations),
			dataOutputOperations:   newOperations(design.DataOutputOperations),
			contractInputs:         newNamedExpressions(design.ContractInputs),
		}
	case *model.ManualTask:
		added = &ManualTask{humanTask: newHumanTask(a, &design.HumanTask)}
	case *model.ReceiveTask:
		if design.Message == nil {
			b.addCause(pointer, "message_event", "receive task %s has no message trigger", base.Name)
		}
		added = &ReceiveTask{activity: a, trigger: b.newMessageTrigger(design.Message)}
	case *model.SendTask:
		if design.Message == nil {
			b.addCause(pointer, "message_event", "send task %s has no message trigger", base.Name)
		}
		added = &SendTask{activity: a, trigger: b.newThrowMessageTrigger(pointer, design.Message)}
	case *model.SubProcess:
		subProcess = &SubProcess{activity: a, triggeredByEvent: design.TriggeredByEvent}
		if err := b.buildSubProcess(pointer, subProcess, &design.FlowElements); err != nil {
			return err
		}
		added = subProcess
	case *model.UserTask:
		added = &UserTask{humanTask: newHumanTask(a, &design.HumanTask), contract: newContract(design.Contract)}
	}

	b.register(added, pointer, &base.FlowNode)

	c := b.container
	c.activities = append(c.activities, added)
	if subProcess != nil {
		c.subProcesses = append(c.subProcesses, subProcess)
	}

	for i := range base.BoundaryEvents {
		b.addBoundaryEvent(added, &base.BoundaryEvents[i])
	}

	return b.result(n, "failed to add activity")
}

func (b *ContainerBuilder) AddGateway(design model.Gateway) error {
	if err := b.check(); err != nil {
		return err
	}

	pointer := elementPointer(b.pointer, design.Name)

	n := len(b.causes)

	node, ok := b.newFlowNode(pointer, &design.FlowNode, model.NodeGateway)
	if !ok {
		return b.result(n, "failed to add gateway")
	}

	gateway := &Gateway{flowNode: node, gatewayType: design.GatewayType}

	b.register(gateway, pointer, &design.FlowNode)

	c := b.container
	c.gateways = append(c.gateways, gateway)
	if gateway.gatewayType == model.GatewayInclusive {
		c.containsInclusiveGateway = true
	}

	return b.result(n, "failed to add gateway")
}

func (b *ContainerBuilder) AddStartEvent(design model.StartEvent) error {
	if err := b.check(); err != nil {
		return err
	}

	pointer := elementPointer(b.pointer, design.Name)

	n := len(b.causes)

	node, ok := b.newFlowNode(pointer, &design.FlowNode, model.NodeStartEvent)
	if !ok {
		return b.result(n, "failed to add start event")
	}

	startEvent := &StartEvent{
		flowNode:     node,
		trigger:      b.newTrigger(pointer, design.CatchTriggers, b.isEventSubProcess()),
		interrupting: b.isEventSubProcess() && (design.Interrupting == nil || *design.Interrupting),
	}

	b.register(startEvent, pointer, &design.FlowNode)
	b.container.startEvents = append(b.container.startEvents, startEvent)

	return b.result(n, "failed to add start event")
}

func (b *ContainerBuilder) AddIntermediateCatchEvent(design model.IntermediateCatchEvent) error {
	if err := b.check(); err != nil {
		return err
	}

	pointer := elementPointer(b.pointer, design.Name)

	n := len(b.causes)

	node, ok := b.newFlowNode(pointer, &design.FlowNode, model.NodeIntermediateCatchEvent)
	if !ok {
		return b.result(n, "failed to add intermediate catch event")
	}

	event := &IntermediateCatchEvent{
		flowNode: node,
		trigger:  b.newTrigger(pointer, design.CatchTriggers, false),
	}
	if design.CatchTriggers == (model.CatchTriggers{}) {
		b.addCause(pointer, "element", "intermediate catch event %s has no trigger", design.Name)
	}

	b.register(event, pointer, &design.FlowNode)
	b.container.intermediateCatchEvents = append(b.container.intermediateCatchEvents, event)

	return b.result(n, "failed to add intermediate catch event")
}

func (b *ContainerBuilder) AddIntermediateThrowEvent(design model.IntermediateThrowEvent) error {
	if err := b.check(); err != nil {
		return err
	}

	pointer := elementPointer(b.pointer, design.Name)

	n := len(b.causes)

	node, ok := b.newFlowNode(pointer, &design.FlowNode, model.NodeIntermediateThrowEvent)
	if !ok {
		return b.result(n, "failed to add intermediate throw event")
	}

	event := &IntermediateThrowEvent{
		flowNode: node,
		trigger:  b.newThrowTrigger(pointer, design.ThrowTriggers, false),
	}

	b.register(event, pointer, &design.FlowNode)
	b.container.intermediateThrowEvents = append(b.container.intermediateThrowEvents, event)

	return b.result(n, "failed to add intermediate throw event")
}

func (b *ContainerBuilder) AddEndEvent(design model.EndEvent) error {
	if err := b.check(); err != nil {
		return err
	}

	pointer := elementPointer(b.pointer, design.Name)

	n := len(b.causes)

	node, ok := b.newFlowNode(pointer, &design.FlowNode, model.NodeEndEvent)
	if !ok {
		return b.result(n, "failed to add end event")
	}

	event := &EndEvent{
		flowNode: node,
		trigger:  b.newThrowTrigger(pointer, design.ThrowTriggers, true),
	}

	b.register(event, pointer, &design.FlowNode)
	b.container.endEvents = append(b.container.endEvents, event)

	return b.result(n, "failed to add end event")
}

// AddTransition adds a transition. Source and target are resolved by Build, so that transitions can be added first.
func (b *ContainerBuilder) AddTransition(design model.Transition) error {
	if err := b.check(); err != nil {
		return err
	}

	pointer := elementPointer(b.pointer, design.Name)

	n := len(b.causes)

	c := b.container
	if _, ok := c.transitionByName[design.Name]; ok {
		b.addCause(pointer, "transition", "transition name %s is not unique", design.Name)
		return b.result(n, "failed to add transition")
	}

	if design.Id != 0 {
		if b.transitionIds[design.Id] {
			b.addCause(pointer, "transition", "transition ID %d is not unique", design.Id)
			return b.result(n, "failed to add transition")
		}
		b.transitionIds[design.Id] = true
	}

	transition := &Transition{
		id:        design.Id,
		name:      design.Name,
		condition: b.condition(pointer, design.Condition),
	}
	b.ids.add(&transition.id)

	c.transitionByName[transition.name] = len(c.transitions)
	c.transitions = append(c.transitions, transition)

	b.pendingTransitions = append(b.pendingTransitions, pendingTransition{
		transition: transition,
		pointer:    pointer,
		source:     design.Source,
		target:     design.Target,
	})

	return b.result(n, "failed to add transition")
}

// AddConnector adds a connector, which is executed when the process or sub process instance is entered or finished.
func (b *ContainerBuilder) AddConnector(design model.Connector) error {
	if err := b.check(); err != nil {
		return err
	}

	n := len(b.causes)

	c := b.container
	if _, ok := c.connectorByName[design.Name]; ok {
		b.addCause(elementPointer(b.pointer, design.Name), "connector", "connector name %s is not unique", design.Name)
		return b.result(n, "failed to add connector")
	}

	c.connectorByName[design.Name] = len(c.connectors)
	c.connectors = append(c.connectors, newConnector(design))
	return nil
}

func (b *ContainerBuilder) AddDataDefinition(design model.DataDefinition) error {
	if err := b.check(); err != nil {
		return err
	}

	b.container.dataDefinitions = append(b.container.dataDefinitions, newDataDefinitions([]model.DataDefinition{design})...)
	return nil
}

func (b *ContainerBuilder) AddBusinessDataDefinition(design model.BusinessDataDefinition) error {
	if err := b.check(); err != nil {
		return err
	}

	b.container.businessDataDefinitions = append(b.container.businessDataDefinitions, newBusinessDataDefinitions([]model.BusinessDataDefinition{design})...)
	return nil
}

func (b *ContainerBuilder) AddDocument(design model.DocumentDefinition) error {
	if err := b.check(); err != nil {
		return err
	}

	b.container.documents = append(b.container.documents, newDocumentDefinition(design))
	return nil
}

// AddAll adds all elements of a design container: transitions, activities, gateways, events, connectors and data.
// Only an error of type [ErrorBug] is returned. Other causes are returned by Build.
func (b *ContainerBuilder) AddAll(design *model.FlowElementContainer) error {
	var errs []error

	for _, transition := range design.Transitions {
		errs = append(errs, b.AddTransition(transition))
	}
	for _, activity := range design.Activities {
		errs = append(errs, b.AddActivity(activity))
	}
	for _, gateway := range design.Gateways {
		errs = append(errs, b.AddGateway(gateway))
	}
	for _, startEvent := range design.StartEvents {
		errs = append(errs, b.AddStartEvent(startEvent))
	}
	for _, event := range design.IntermediateCatchEvents {
		errs = append(errs, b.AddIntermediateCatchEvent(event))
	}
	for _, event := range design.IntermediateThrowEvents {
		errs = append(errs, b.AddIntermediateThrowEvent(event))
	}
	for _, endEvent := range design.EndEvents {
		errs = append(errs, b.AddEndEvent(endEvent))
	}
	for _, connector := range design.Connectors {
		errs = append(errs, b.AddConnector(connector))
	}
	for _, dataDefinition := range design.DataDefinitions {
		errs = append(errs, b.AddDataDefinition(dataDefinition))
	}
	for _, businessDataDefinition := range design.BusinessDataDefinitions {
		errs = append(errs, b.AddBusinessDataDefinition(businessDataDefinition))
	}
	for _, document := range design.Documents {
		errs = append(errs, b.AddDocument(document))
	}

	for _, err := range errs {
		if err == nil {
			continue
		}
		if e, ok := err.(Error); !ok || e.Type != ErrorProcessModel {
			return err
		}
	}
	return nil
}

// Build generates the missing IDs, builds the nested containers of sub processes,
// resolves the references between flow nodes and transitions and freezes the container.
// If the process model is invalid, an error of type [ErrorProcessModel] with all collected causes is returned.
func (b *ContainerBuilder) Build() (*FlowElementContainer, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	b.built = true

	// all explicit IDs of the process are known now
	b.ids.assign()

	c := b.container

	for _, pending := range b.pendingFlowNodes {
		c.flowNodeById[pending.node.id] = c.flowNodeByName[pending.node.name]
	}
	for _, t := range c.transitions {
		b.transitionIds[t.id] = true
	}

	for _, nested := range b.nested {
		if _, err := nested.Build(); err != nil {
			e, ok := err.(Error)
			if !ok || e.Type != ErrorProcessModel {
				b.err = err
				return nil, err
			}
			b.causes = append(b.causes, e.Causes...)
		}
	}

	for _, pending := range b.pendingTransitions {
		t := pending.transition

		if i, ok := c.flowNodeByName[pending.source]; ok {
			t.sourceId = c.flowNodes[i].Id()
		} else {
			b.addCause(pending.pointer, "transition", "transition %s has no source flow node %s", t.name, pending.source)
		}
		if i, ok := c.flowNodeByName[pending.target]; ok {
			t.targetId = c.flowNodes[i].Id()
		} else {
			b.addCause(pending.pointer, "transition", "transition %s has no target flow node %s", t.name, pending.target)
		}
	}

	for _, pending := range b.pendingFlowNodes {
		node := pending.node

		node.incoming = b.resolveTransitions(pending, pending.incoming, func(t *Transition) bool {
			return t.targetId == node.id
		}, "incoming")
		node.outgoing = b.resolveTransitions(pending, pending.outgoing, func(t *Transition) bool {
			return t.sourceId == node.id
		}, "outgoing")

		if pending.defaultTransition == "" {
			continue
		}

		i := slices.IndexFunc(node.outgoing, func(t *Transition) bool {
			return t.name == pending.defaultTransition
		})
		if i == -1 {
			b.addCause(pending.pointer, "element", "flow node %s has no outgoing default transition %s", node.name, pending.defaultTransition)
			continue
		}

		node.defaultTransition = node.outgoing[i]
	}

	// explicit transition lists must not omit a transition
	for _, t := range c.transitions {
		if source := c.localFlowNode(t.sourceId); source != nil && !slices.Contains(source.base().outgoing, t) {
			b.addCause(elementPointer(b.pointer, t.name), "transition", "transition %s is not an outgoing transition of flow node %s", t.name, source.Name())
		}
		if target := c.localFlowNode(t.targetId); target != nil && !slices.Contains(target.base().incoming, t) {
			b.addCause(elementPointer(b.pointer, t.name), "transition", "transition %s is not an incoming transition of flow node %s", t.name, target.Name())
		}
	}

	if len(b.causes) != 0 {
		detail := "flow element container is invalid"
		if b.pointer != "" {
			detail = fmt.Sprintf("flow element container %s is invalid", b.pointer)
		}

		return nil, Error{
			Type:   ErrorProcessModel,
			Title:  "failed to build flow element container",
			Detail: detail,
			Causes: slices.Clone(b.causes),
		}
	}

	return c, nil
}

// resolveTransitions resolves the named transitions of a flow node or, if no names are given,
// derives them from the transitions of the container in declaration order.
func (b *ContainerBuilder) resolveTransitions(pending pendingFlowNode, names []string, match func(*Transition) bool, direction string) []*Transition {
	c := b.container

	var transitions []*Transition
	if len(names) == 0 {
		for _, t := range c.transitions {
			if match(t) {
				transitions = append(transitions, t)
			}
		}
		return transitions
	}

	for _, name := range names {
		i, ok := c.transitionByName[name]
		if !ok {
			b.addCause(pending.pointer, "element", "flow node %s has no %s transition %s", pending.node.name, direction, name)
			continue
		}

		t := c.transitions[i]
		if !match(t) {
			b.addCause(pending.pointer, "element", "transition %s is not an %s transition of flow node %s", name, direction, pending.node.name)
			continue
		}

		transitions = append(transitions, t)
	}
	return transitions
}

func (b *ContainerBuilder) addBoundaryEvent(attachedTo Activity, design *model.BoundaryEvent) {
	pointer := elementPointer(b.pointer, design.Name)

	node, ok := b.newFlowNode(pointer, &design.FlowNode, model.NodeBoundaryEvent)
	if !ok {
		return
	}

	boundaryEvent := &BoundaryEvent{
		flowNode:     node,
		trigger:      b.newTrigger(pointer, design.CatchTriggers, true),
		interrupting: design.IsInterrupting(),
		attachedTo:   attachedTo,
	}
	if design.CatchTriggers == (model.CatchTriggers{}) {
		b.addCause(pointer, "element", "boundary event %s has no trigger", design.Name)
	}

	b.register(boundaryEvent, pointer, &design.FlowNode)

	c := b.container
	c.boundaryEventByName[boundaryEvent.name] = len(c.boundaryEvents)
	c.boundaryEvents = append(c.boundaryEvents, boundaryEvent)

	attachedTo.activityBase().attach(boundaryEvent)
}

func (b *ContainerBuilder) buildSubProcess(pointer string, subProcess *SubProcess, design *model.FlowElementContainer) error {
	container := newFlowElementContainer(false)
	container.elementContainer = subProcess

	subProcess.container = container

	nested := newContainerBuilder(container, b.ids, b.options, pointer)
	if err := nested.AddAll(design); err != nil {
		b.err = err
		return err
	}

	b.nested = append(b.nested, nested)
	return nil
}

// newFlowNode creates the common part of a flow node. A missing ID is generated, when the container is built.
// If the name or the explicit ID is not unique, false is returned and the flow node must not be registered.
func (b *ContainerBuilder) newFlowNode(pointer string, design *model.FlowNode, nodeType model.FlowNodeType) (flowNode, bool) {
	if _, ok := b.container.flowNodeByName[design.Name]; ok {
		b.addCause(pointer, "element", "flow node name %s is not unique", design.Name)
		return flowNode{}, false
	}

	if _, ok := b.container.flowNodeById[design.Id]; ok && design.Id != 0 {
		b.addCause(pointer, "element", "flow node ID %d is not unique", design.Id)
		return flowNode{}, false
	}

	var connectors []*Connector
	if len(design.Connectors) != 0 {
		connectors = make([]*Connector, len(design.Connectors))
		for i, connector := range design.Connectors {
			connectors[i] = newConnector(connector)
		}
	}

	return flowNode{
		id:          design.Id,
		name:        design.Name,
		description: design.Description,
		nodeType:    nodeType,

		displayName:                       b.expression(pointer, design.DisplayName),
		displayDescription:                b.expression(pointer, design.DisplayDescription),
		displayDescriptionAfterCompletion: b.expression(pointer, design.DisplayDescriptionAfterCompletion),

		connectors: connectors,
	}, true
}

// register adds a flow node to the name index and, if it has an explicit ID, to the ID index.
// The caller adds it to the typed collection.
func (b *ContainerBuilder) register(node FlowNode, pointer string, design *model.FlowNode) {
	c := b.container

	n := node.base()
	b.ids.add(&n.id)

	if n.id != 0 {
		c.flowNodeById[n.id] = len(c.flowNodes)
	}
	c.flowNodeByName[n.name] = len(c.flowNodes)
	c.flowNodes = append(c.flowNodes, node)

	b.pendingFlowNodes = append(b.pendingFlowNodes, pendingFlowNode{
		node:              n,
		pointer:           pointer,
		incoming:          design.Incoming,
		outgoing:          design.Outgoing,
		defaultTransition: design.DefaultTransition,
	})
}

func newHumanTask(a activity, design *model.HumanTask) humanTask {
	return humanTask{
		activity:         a,
		actorName:        design.ActorName,
		userFilter:       newUserFilter(design.UserFilter),
		priority:         design.Priority,
		expectedDuration: time.Duration(design.ExpectedDuration) * time.Millisecond,
	}
}

func (b *ContainerBuilder) newLoopCharacteristics(pointer string, design *model.ActivityBase) LoopCharacteristics {
	switch {
	case design.StandardLoop != nil && design.MultiInstance != nil:
		b.addCause(pointer, "element", "activity %s has a standard loop and multi instance characteristics", design.Name)
		return nil
	case design.StandardLoop != nil:
		return &StandardLoop{
			condition:  b.condition(pointer, design.StandardLoop.Condition),
			testBefore: design.StandardLoop.TestBefore,
			loopMax:    b.expression(pointer, design.StandardLoop.LoopMax),
		}
	case design.MultiInstance != nil:
		multiInstance := design.MultiInstance
		return &MultiInstanceLoop{
			sequential:          multiInstance.Sequential,
			cardinality:         b.expression(pointer, multiInstance.Cardinality),
			completionCondition: b.condition(pointer, multiInstance.CompletionCondition),
			loopDataInput:       multiInstance.LoopDataInput,
			loopDataOutput:      multiInstance.LoopDataOutput,
			dataInputItem:       multiInstance.DataInputItem,
			dataOutputItem:      multiInstance.DataOutputItem,
		}
	default:
		return nil
	}
}

// newTrigger creates the catch trigger of an event. Error triggers are only allowed, if errorAllowed is true.
func (b *ContainerBuilder) newTrigger(pointer string, design model.CatchTriggers, errorAllowed bool) Trigger {
	var triggers []Trigger
	if design.Message != nil {
		triggers = append(triggers, b.newMessageTrigger(design.Message))
	}
	if design.Timer != nil {
		triggers = append(triggers, b.newTimerTrigger(pointer, design.Timer))
	}
	if design.Signal != nil {
		triggers = append(triggers, &SignalTrigger{signalName: design.Signal.SignalName})
	}
	if design.Error != nil {
		if !errorAllowed {
			b.addCause(pointer, "error_event", "error trigger is only allowed for boundary events and start events of event sub processes")
		}
		triggers = append(triggers, &ErrorTrigger{errorCode: design.Error.ErrorCode})
	}

	switch len(triggers) {
	case 0:
		return nil
	case 1:
		return triggers[0]
	default:
		b.addCause(pointer, "element", "event has %d triggers, but only one is allowed", len(triggers))
		return nil
	}
}

// newThrowTrigger creates the throw trigger of an event. Error and terminate triggers are only allowed for end events.
func (b *ContainerBuilder) newThrowTrigger(pointer string, design model.ThrowTriggers, endEvent bool) ThrowTrigger {
	var triggers []ThrowTrigger
	if design.Message != nil {
		triggers = append(triggers, b.newThrowMessageTrigger(pointer, design.Message))
	}
	if design.Signal != nil {
		triggers = append(triggers, &ThrowSignalTrigger{signalName: design.Signal.SignalName})
	}
	if design.Error != nil {
		if !endEvent {
			b.addCause(pointer, "error_event", "error trigger is only allowed for end events")
		}
		triggers = append(triggers, &ThrowErrorTrigger{errorCode: design.Error.ErrorCode})
	}
	if design.Terminate {
		if !endEvent {
			b.addCause(pointer, "element", "terminate trigger is only allowed for end events")
		}
		triggers = append(triggers, &TerminateTrigger{})
	}

	switch len(triggers) {
	case 0:
		return nil
	case 1:
		return triggers[0]
	default:
		b.addCause(pointer, "element", "event has %d triggers, but only one is allowed", len(triggers))
		return nil
	}
}

func (b *ContainerBuilder) newMessageTrigger(design *model.MessageTrigger) *MessageTrigger {
	if design == nil {
		return nil
	}
	return &MessageTrigger{
		messageName:  design.MessageName,
		correlations: newCorrelations(design.Correlations),
	}
}

func (b *ContainerBuilder) newThrowMessageTrigger(pointer string, design *model.ThrowMessageTrigger) *ThrowMessageTrigger {
	if design == nil {
		return nil
	}

	var content []MessageContent
	if len(design.Content) != 0 {
		content = make([]MessageContent, len(design.Content))
		for i, c := range design.Content {
			content[i] = MessageContent{Name: c.Name, Value: NewExpression(&c.Value)}
		}
	}

	return &ThrowMessageTrigger{
		messageName:          design.MessageName,
		targetProcess:        b.expression(pointer, design.TargetProcess),
		targetProcessVersion: b.expression(pointer, design.TargetProcessVersion),
		targetFlowNode:       b.expression(pointer, design.TargetFlowNode),
		correlations:         newCorrelations(design.Correlations),
		content:              content,
	}
}

func (b *ContainerBuilder) newTimerTrigger(pointer string, design *model.TimerTrigger) *TimerTrigger {
	timer := &TimerTrigger{
		timerType:  design.TimerType,
		expression: b.expression(pointer, &design.Expression),
	}

	if b.options.StrictMode {
		if err := checkTimer(timer); err != nil {
			b.addCause(pointer, "timer_event", "%v", err)
		}
	}

	return timer
}

// expression creates an expression. In strict mode, expressions, interpreted by expr, are checked.
func (b *ContainerBuilder) expression(pointer string, design *model.Expression) Expression {
	e := NewExpression(design)
	if b.options.StrictMode {
		if err := checkExpression(e, false); err != nil {
			b.addCause(pointer, "expression", "%v", err)
		}
	}
	return e
}

// condition creates an expression, which must evaluate to a boolean.
// In strict mode, conditions without interpreter are checked like expressions, interpreted by expr.
func (b *ContainerBuilder) condition(pointer string, design *model.Expression) Expression {
	e := NewExpression(design)
	if b.options.StrictMode {
		if err := checkExpression(e, true); err != nil {
			b.addCause(pointer, "expression", "%v", err)
		}
	}
	return e
}

func (b *ContainerBuilder) isEventSubProcess() bool {
	subProcess, ok := b.container.elementContainer.(*SubProcess)
	return ok && subProcess.triggeredByEvent
}

func (b *ContainerBuilder) addCause(pointer string, causeType string, format string, args ...any) {
	b.causes = append(b.causes, ErrorCause{
		Pointer: pointer,
		Type:    causeType,
		Detail:  fmt.Sprintf(format, args...),
	})
}

func (b *ContainerBuilder) bug(title string, detail string) error {
	b.err = Error{
		Type:   ErrorBug,
		Title:  title,
		Detail: detail,
	}
	return b.err
}

func (b *ContainerBuilder) check() error {
	if b.err != nil {
		return b.err
	}
	if b.built {
		return Error{
			Type:   ErrorBug,
			Title:  "failed to modify flow element container",
			Detail: "container builder has already been built",
		}
	}
	return nil
}

// result returns the causes, collected since the n-th cause, as error.
func (b *ContainerBuilder) result(n int, title string) error {
	if len(b.causes) == n {
		return nil
	}
	return Error{
		Type:   ErrorProcessModel,
		Title:  title,
		Detail: fmt.Sprintf("%d cause(s) found", len(b.causes)-n),
		Causes: slices.Clone(b.causes[n:]),
	}
}

// idGenerator provides IDs for flow nodes and transitions, which have no explicit ID.
// It is shared by all builders of a process, so that generated IDs are unique within the process.
// IDs are generated after all explicit IDs are known, so that a generated ID never equals an explicit one.
type idGenerator struct {
	offset  int64
	max     int64 // greatest explicit ID
	pending []*int64
}

func newIdGenerator(offset int64) *idGenerator {
	return &idGenerator{offset: offset}
}

// add records an explicit ID or, if 0, an ID to generate.
func (g *idGenerator) add(id *int64) {
	if *id != 0 {
		g.max = max(g.max, *id)
		return
	}
	g.pending = append(g.pending, id)
}

// assign generates the pending IDs in the order they were added.
// The first generated ID is greater than the offset and all explicit IDs.
func (g *idGenerator) assign() {
	next := max(g.offset, g.max) + 1
	for _, id := range g.pending {
		*id = next
		next++
	}

	g.offset = next - 1
	g.pending = nil
}
