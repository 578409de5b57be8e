package definition

import (
	"fmt"
	"slices"

	"github.com/gclaussn/go-bpmn-model/model"
)

// StringIndexCount is the number of string index slots of a process definition.
const StringIndexCount = 5

// ProcessDefinition is the validated, immutable definition of a process.
// All flow elements are part of the root container.
type ProcessDefinition struct {
	id          int64
	name        string
	version     string
	description string

	actors         []Actor
	actorInitiator *Actor
	parameters     []Parameter
	contract       *Contract
	context        []NamedExpression
	stringIndexes  [StringIndexCount]StringIndex

	container *FlowElementContainer
}

type Actor struct {
	Name        string
	Description string
}

type Parameter struct {
	Name        string
	Type        string
	Description string
}

// StringIndex is a label and value pair, used for custom sortable and filterable columns.
type StringIndex struct {
	Label string
	Value Expression
}

// New creates a process definition from its design.
//
// The design is validated first - see [Validate].
// Afterwards the elements are added to the root container, which is built.
// If the process model is invalid, an error of type [ErrorProcessModel] with all causes is returned.
func New(design *model.ProcessDefinition, customizers ...func(*Options)) (*ProcessDefinition, error) {
	options, err := newOptions(customizers)
	if err != nil {
		return nil, err
	}

	if err := Validate(design); err != nil {
		return nil, err
	}

	process := &ProcessDefinition{
		id:          options.ProcessId,
		name:        design.Name,
		version:     design.Version,
		description: design.Description,

		parameters: make([]Parameter, len(design.Parameters)),
		contract:   newContract(design.Contract),
		context:    newNamedExpressions(design.Context),
	}

	for _, actor := range design.Actors {
		process.actors = append(process.actors, Actor{Name: actor.Name, Description: actor.Description})
	}
	if design.ActorInitiator != nil {
		process.actorInitiator = &Actor{Name: design.ActorInitiator.Name, Description: design.ActorInitiator.Description}
	}
	for i, parameter := range design.Parameters {
		process.parameters[i] = Parameter{Name: parameter.Name, Type: parameter.Type, Description: parameter.Description}
	}
	for i, stringIndex := range design.StringIndexes {
		process.stringIndexes[i] = StringIndex{Label: stringIndex.Label, Value: NewExpression(stringIndex.Value)}
	}

	container := newFlowElementContainer(true)
	container.elementContainer = process

	b := newContainerBuilder(container, newIdGenerator(options.IdOffset), options, elementPointer("", design.Name))
	if err := b.AddAll(&design.FlowElements); err != nil {
		return nil, err
	}

	if _, err := b.Build(); err != nil {
		e, ok := err.(Error)
		if !ok || e.Type != ErrorProcessModel {
			return nil, err
		}
		return nil, Error{
			Type:   ErrorProcessModel,
			Title:  "failed to create process definition",
			Detail: fmt.Sprintf("process %s:%s is invalid", design.Name, design.Version),
			Causes: e.Causes,
		}
	}

	process.container = container

	if causes := process.validateActors(); len(causes) != 0 {
		return nil, Error{
			Type:   ErrorProcessModel,
			Title:  "failed to create process definition",
			Detail: fmt.Sprintf("process %s:%s is invalid", design.Name, design.Version),
			Causes: causes,
		}
	}

	return process, nil
}

func (p *ProcessDefinition) Id() int64 {
	return p.id
}

func (p *ProcessDefinition) Name() string {
	return p.name
}

func (p *ProcessDefinition) Version() string {
	return p.version
}

func (p *ProcessDefinition) Description() string {
	return p.description
}

func (p *ProcessDefinition) Actors() []Actor {
	return slices.Clone(p.actors)
}

// ActorInitiator returns the actor, which is allowed to start the process.
// If the process has no actor initiator, false is returned.
func (p *ProcessDefinition) ActorInitiator() (Actor, bool) {
	if p.actorInitiator == nil {
		return Actor{}, false
	}
	return *p.actorInitiator, true
}

func (p *ProcessDefinition) Parameters() []Parameter {
	return slices.Clone(p.parameters)
}

// Contract returns the contract, the input of a process instantiation must fulfill, or nil.
func (p *ProcessDefinition) Contract() *Contract {
	return p.contract
}

// Context returns the context entries in declaration order.
func (p *ProcessDefinition) Context() []NamedExpression {
	return slices.Clone(p.context)
}

// StringIndex returns the string index of the given 1-based slot.
// If the slot is out of range or not set, the zero value is returned.
func (p *ProcessDefinition) StringIndex(i int) StringIndex {
	if i < 1 || i > StringIndexCount {
		return StringIndex{}
	}
	return p.stringIndexes[i-1]
}

// Container returns the root container.
func (p *ProcessDefinition) Container() *FlowElementContainer {
	return p.container
}

func (p *ProcessDefinition) String() string {
	return p.name + ":" + p.version
}

// validateActors validates that the actors of human tasks and the actor initiator are defined.
func (p *ProcessDefinition) validateActors() []ErrorCause {
	if len(p.actors) == 0 {
		return nil
	}

	actorNames := make(map[string]bool, len(p.actors))
	for _, actor := range p.actors {
		actorNames[actor.Name] = true
	}

	var causes []ErrorCause

	if p.actorInitiator != nil && !actorNames[p.actorInitiator.Name] {
		causes = append(causes, ErrorCause{
			Pointer: elementPointer("", p.name),
			Type:    "process",
			Detail:  fmt.Sprintf("actor initiator %s is not defined", p.actorInitiator.Name),
		})
	}

	p.container.Walk(func(path []int64, flowNode FlowNode) bool {
		humanTask, ok := flowNode.(HumanTask)
		if !ok || humanTask.ActorName() == "" || actorNames[humanTask.ActorName()] {
			return true
		}

		causes = append(causes, ErrorCause{
			Pointer: p.pointer(path, flowNode),
			Type:    "element",
			Detail:  fmt.Sprintf("actor %s of human task %s is not defined", humanTask.ActorName(), flowNode.Name()),
		})
		return true
	})

	return causes
}

// pointer returns the element pointer of a flow node, which is located by a path of sub process IDs.
func (p *ProcessDefinition) pointer(path []int64, flowNode FlowNode) string {
	pointer := elementPointer("", p.name)

	container := p.container
	for _, id := range path {
		subProcess := container.localFlowNode(id).(*SubProcess)
		pointer = elementPointer(pointer, subProcess.name)
		container = subProcess.container
	}

	return elementPointer(pointer, flowNode.Name())
}
