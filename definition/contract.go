package definition

import (
	"slices"

	"github.com/gclaussn/go-bpmn-model/model"
)

// Contract defines the inputs, required to start a process or to execute a user task, and the constraints they must satisfy.
type Contract struct {
	inputs      []Input
	constraints []Constraint
}

func newContract(design *model.Contract) *Contract {
	if design == nil {
		return nil
	}

	constraints := make([]Constraint, len(design.Constraints))
	for i, c := range design.Constraints {
		constraintType := c.Type
		if constraintType == 0 {
			constraintType = model.ConstraintCustom
		}

		constraints[i] = Constraint{
			name:           c.Name,
			expression:     c.Expression,
			explanation:    c.Explanation,
			inputNames:     slices.Clone(c.InputNames),
			constraintType: constraintType,
		}
	}

	return &Contract{
		inputs:      newInputs(design.Inputs),
		constraints: constraints,
	}
}

func (c *Contract) Inputs() []Input {
	return slices.Clone(c.inputs)
}

// Input returns the top-level input with the given name or nil.
func (c *Contract) Input(name string) Input {
	for _, input := range c.inputs {
		if input.Name() == name {
			return input
		}
	}
	return nil
}

func (c *Contract) Constraints() []Constraint {
	return slices.Clone(c.constraints)
}

// Input is either a [*SimpleInput] or a [*ComplexInput].
type Input interface {
	Name() string
	Description() string
	IsMultiple() bool

	input()
}

func newInputs(designs []model.Input) []Input {
	if len(designs) == 0 {
		return nil
	}

	inputs := make([]Input, len(designs))
	for i, design := range designs {
		if len(design.Inputs) != 0 {
			inputs[i] = &ComplexInput{
				name:        design.Name,
				description: design.Description,
				multiple:    design.Multiple,
				inputs:      newInputs(design.Inputs),
			}
		} else {
			inputs[i] = &SimpleInput{
				name:        design.Name,
				description: design.Description,
				multiple:    design.Multiple,
				inputType:   design.Type,
			}
		}
	}
	return inputs
}

type SimpleInput struct {
	name        string
	description string
	multiple    bool
	inputType   model.InputType
}

func (i *SimpleInput) Name() string {
	return i.name
}

func (i *SimpleInput) Description() string {
	return i.description
}

func (i *SimpleInput) IsMultiple() bool {
	return i.multiple
}

func (i *SimpleInput) Type() model.InputType {
	return i.inputType
}

func (*SimpleInput) input() {}

// ComplexInput is composed of nested inputs.
type ComplexInput struct {
	name        string
	description string
	multiple    bool
	inputs      []Input
}

func (i *ComplexInput) Name() string {
	return i.name
}

func (i *ComplexInput) Description() string {
	return i.description
}

func (i *ComplexInput) IsMultiple() bool {
	return i.multiple
}

func (i *ComplexInput) Inputs() []Input {
	return slices.Clone(i.inputs)
}

func (*ComplexInput) input() {}

type Constraint struct {
	name           string
	expression     string
	explanation    string
	inputNames     []string
	constraintType model.ConstraintType
}

func (c Constraint) Name() string {
	return c.name
}

func (c Constraint) Expression() string {
	return c.expression
}

// Explanation returns the message, shown when the constraint is violated.
func (c Constraint) Explanation() string {
	return c.explanation
}

func (c Constraint) InputNames() []string {
	return slices.Clone(c.inputNames)
}

func (c Constraint) Type() model.ConstraintType {
	return c.constraintType
}
