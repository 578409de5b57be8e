package definition

import "github.com/gclaussn/go-bpmn-model/model"

type Gateway struct {
	flowNode

	gatewayType model.GatewayType
}

func (g *Gateway) GatewayType() model.GatewayType {
	return g.gatewayType
}

func (g *Gateway) IsParallelOrInclusive() bool {
	return g.gatewayType == model.GatewayParallel || g.gatewayType == model.GatewayInclusive
}

func (g *Gateway) IsExclusive() bool {
	return g.gatewayType == model.GatewayExclusive
}

type StartEvent struct {
	flowNode

	trigger      Trigger
	interrupting bool
}

// Trigger returns the catch trigger or nil, if the start event is a none start event.
func (e *StartEvent) Trigger() Trigger {
	return e.trigger
}

// IsInterrupting determines if the event cancels the enclosing sub process, when started within an event sub process.
// Outside of event sub processes it is always false.
func (e *StartEvent) IsInterrupting() bool {
	return e.interrupting
}

type IntermediateCatchEvent struct {
	flowNode

	trigger Trigger
}

func (e *IntermediateCatchEvent) Trigger() Trigger {
	return e.trigger
}

type IntermediateThrowEvent struct {
	flowNode

	trigger ThrowTrigger
}

func (e *IntermediateThrowEvent) Trigger() ThrowTrigger {
	return e.trigger
}

type EndEvent struct {
	flowNode

	trigger ThrowTrigger
}

// Trigger returns the throw trigger or nil, if the end event is a none end event.
func (e *EndEvent) Trigger() ThrowTrigger {
	return e.trigger
}

// BoundaryEvent is attached to an activity of the same container.
type BoundaryEvent struct {
	flowNode

	trigger      Trigger
	interrupting bool
	attachedTo   Activity
}

func (e *BoundaryEvent) Trigger() Trigger {
	return e.trigger
}

// AttachedTo returns the activity, the event is attached to.
func (e *BoundaryEvent) AttachedTo() Activity {
	return e.attachedTo
}

func (e *BoundaryEvent) IsBoundaryEvent() bool {
	return true
}

// IsInterrupting determines if the event cancels the activity, it is attached to.
func (e *BoundaryEvent) IsInterrupting() bool {
	return e.interrupting
}
