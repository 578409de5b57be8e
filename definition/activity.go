package definition

import (
	"fmt"
	"slices"
	"time"

	"github.com/gclaussn/go-bpmn-model/model"
)

// Activity is implemented by all activity variants:
// [*AutomaticTask], [*UserTask], [*ManualTask], [*ReceiveTask], [*SendTask], [*CallActivity] and [*SubProcess].
type Activity interface {
	FlowNode

	DataDefinitions() []DataDefinition
	BusinessDataDefinitions() []BusinessDataDefinition
	// Operations returns the operations, executed when the activity completes.
	Operations() []Operation
	// LoopCharacteristics returns a [*StandardLoop], a [*MultiInstanceLoop] or nil.
	LoopCharacteristics() LoopCharacteristics

	// BoundaryEvents returns the attached boundary events in declaration order.
	BoundaryEvents() []*BoundaryEvent
	// BoundaryEvent returns the attached boundary event with the given name.
	// If no such event is attached, an error of type [ErrorNotFound] is returned.
	BoundaryEvent(name string) (*BoundaryEvent, error)

	activityBase() *activity
}

type activity struct {
	flowNode

	dataDefinitions         []DataDefinition
	businessDataDefinitions []BusinessDataDefinition
	operations              []Operation
	loop                    LoopCharacteristics

	boundaryEvents       []*BoundaryEvent
	boundaryEventsByName map[string]*BoundaryEvent
}

func (a *activity) DataDefinitions() []DataDefinition {
	return slices.Clone(a.dataDefinitions)
}

func (a *activity) BusinessDataDefinitions() []BusinessDataDefinition {
	return slices.Clone(a.businessDataDefinitions)
}

func (a *activity) Operations() []Operation {
	return slices.Clone(a.operations)
}

func (a *activity) LoopCharacteristics() LoopCharacteristics {
	return a.loop
}

func (a *activity) BoundaryEvents() []*BoundaryEvent {
	return slices.Clone(a.boundaryEvents)
}

func (a *activity) BoundaryEvent(name string) (*BoundaryEvent, error) {
	boundaryEvent, ok := a.boundaryEventsByName[name]
	if !ok {
		return nil, Error{
			Type:   ErrorNotFound,
			Title:  "failed to find boundary event",
			Detail: fmt.Sprintf("activity %s has no boundary event %s", a.name, name),
		}
	}
	return boundaryEvent, nil
}

func (a *activity) activityBase() *activity {
	return a
}

func (a *activity) attach(boundaryEvent *BoundaryEvent) {
	if a.boundaryEventsByName == nil {
		a.boundaryEventsByName = make(map[string]*BoundaryEvent)
	}
	a.boundaryEvents = append(a.boundaryEvents, boundaryEvent)
	a.boundaryEventsByName[boundaryEvent.name] = boundaryEvent
}

// AutomaticTask is executed without user interaction - e.g. by connectors only.
type AutomaticTask struct {
	activity
}

// HumanTask is implemented by [*UserTask] and [*ManualTask].
type HumanTask interface {
	Activity

	// ActorName returns the name of the actor, the task is assigned to.
	ActorName() string
	UserFilter() (UserFilter, bool)
	Priority() model.TaskPriority
	ExpectedDuration() time.Duration
}

type humanTask struct {
	activity

	actorName        string
	userFilter       *UserFilter
	priority         model.TaskPriority
	expectedDuration time.Duration
}

func (t *humanTask) ActorName() string {
	return t.actorName
}

// UserFilter returns a copy of the user filter. If the task has no user filter, false is returned.
func (t *humanTask) UserFilter() (UserFilter, bool) {
	if t.userFilter == nil {
		return UserFilter{}, false
	}
	return *t.userFilter, true
}

func (t *humanTask) Priority() model.TaskPriority {
	return t.priority
}

func (t *humanTask) ExpectedDuration() time.Duration {
	return t.expectedDuration
}

type UserTask struct {
	humanTask

	contract *Contract
}

// Contract returns the contract, the input of the task must fulfill, or nil.
func (t *UserTask) Contract() *Contract {
	return t.contract
}

type ManualTask struct {
	humanTask
}

// ReceiveTask waits for a message.
type ReceiveTask struct {
	activity

	trigger *MessageTrigger
}

func (t *ReceiveTask) Trigger() *MessageTrigger {
	return t.trigger
}

// SendTask sends a message.
type SendTask struct {
	activity

	trigger *ThrowMessageTrigger
}

func (t *SendTask) Trigger() *ThrowMessageTrigger {
	return t.trigger
}

// CallActivity starts an instance of another process and waits for its completion.
type CallActivity struct {
	activity

	callableElement        Expression
	callableElementVersion Expression
	callableElementType    model.CallableElementType

	dataInputOperations  []Operation
	dataOutputOperations []Operation
	contractInputs       []NamedExpression
}

// CallableElement returns the expression, evaluating the name of the called process.
func (a *CallActivity) CallableElement() Expression {
	return a.callableElement
}

// CallableElementVersion returns the expression, evaluating the version of the called process.
// If absent, the latest version is called.
func (a *CallActivity) CallableElementVersion() Expression {
	return a.callableElementVersion
}

func (a *CallActivity) CallableElementType() model.CallableElementType {
	return a.callableElementType
}

func (a *CallActivity) DataInputOperations() []Operation {
	return slices.Clone(a.dataInputOperations)
}

func (a *CallActivity) DataOutputOperations() []Operation {
	return slices.Clone(a.dataOutputOperations)
}

func (a *CallActivity) ContractInputs() []NamedExpression {
	return slices.Clone(a.contractInputs)
}

// SubProcess owns a nested [FlowElementContainer].
type SubProcess struct {
	activity

	triggeredByEvent bool
	container        *FlowElementContainer
}

// Container returns the nested container.
func (p *SubProcess) Container() *FlowElementContainer {
	return p.container
}

// TriggeredByEvent determines if the sub process is an event sub process.
func (p *SubProcess) TriggeredByEvent() bool {
	return p.triggeredByEvent
}

func (p *SubProcess) IsEventSubProcess() bool {
	return p.triggeredByEvent
}

// IsStartable returns false for event sub processes, since they are started by a trigger only.
func (p *SubProcess) IsStartable() bool {
	return !p.triggeredByEvent && len(p.incoming) == 0
}

// LoopCharacteristics is either a [*StandardLoop] or a [*MultiInstanceLoop].
type LoopCharacteristics interface {
	loopCharacteristics()
}

// StandardLoop repeats an activity while its condition is true.
type StandardLoop struct {
	condition  Expression
	testBefore bool
	loopMax    Expression
}

func (l *StandardLoop) Condition() Expression {
	return l.condition
}

// TestBefore determines if the condition is evaluated before each iteration.
func (l *StandardLoop) TestBefore() bool {
	return l.testBefore
}

func (l *StandardLoop) LoopMax() Expression {
	return l.loopMax
}

func (*StandardLoop) loopCharacteristics() {}

// MultiInstanceLoop creates multiple instances of an activity - sequentially or in parallel.
type MultiInstanceLoop struct {
	sequential          bool
	cardinality         Expression
	completionCondition Expression
	loopDataInput       string
	loopDataOutput      string
	dataInputItem       string
	dataOutputItem      string
}

func (l *MultiInstanceLoop) IsSequential() bool {
	return l.sequential
}

func (l *MultiInstanceLoop) Cardinality() Expression {
	return l.cardinality
}

func (l *MultiInstanceLoop) CompletionCondition() Expression {
	return l.completionCondition
}

// LoopDataInput returns the name of the list data, an instance is created for each item of.
func (l *MultiInstanceLoop) LoopDataInput() string {
	return l.loopDataInput
}

func (l *MultiInstanceLoop) LoopDataOutput() string {
	return l.loopDataOutput
}

func (l *MultiInstanceLoop) DataInputItem() string {
	return l.dataInputItem
}

func (l *MultiInstanceLoop) DataOutputItem() string {
	return l.dataOutputItem
}

func (*MultiInstanceLoop) loopCharacteristics() {}
