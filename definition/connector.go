package definition

import (
	"slices"

	"github.com/gclaussn/go-bpmn-model/model"
)

// Connector calls an external system, when a flow node is entered or finished.
type Connector struct {
	name            string
	connectorId     string
	version         string
	activationEvent model.ConnectorEvent
	failAction      model.FailAction
	errorCode       string
	inputs          []NamedExpression
	outputs         []Operation
}

func newConnector(design model.Connector) *Connector {
	failAction := design.FailAction
	if failAction == 0 {
		failAction = model.FailFail
	}

	return &Connector{
		name:            design.Name,
		connectorId:     design.ConnectorId,
		version:         design.Version,
		activationEvent: design.ActivationEvent,
		failAction:      failAction,
		errorCode:       design.ErrorCode,
		inputs:          newNamedExpressions(design.Inputs),
		outputs:         newOperations(design.Outputs),
	}
}

func (c *Connector) Name() string {
	return c.name
}

// ConnectorId returns the ID of the connector implementation.
func (c *Connector) ConnectorId() string {
	return c.connectorId
}

func (c *Connector) Version() string {
	return c.version
}

func (c *Connector) ActivationEvent() model.ConnectorEvent {
	return c.activationEvent
}

func (c *Connector) FailAction() model.FailAction {
	return c.failAction
}

// ErrorCode returns the code of the error, thrown when the connector fails and the fail action is ERROR_EVENT.
func (c *Connector) ErrorCode() string {
	return c.errorCode
}

// Inputs returns the input expressions in declaration order.
func (c *Connector) Inputs() []NamedExpression {
	return slices.Clone(c.inputs)
}

func (c *Connector) Outputs() []Operation {
	return slices.Clone(c.outputs)
}

func filterConnectors(connectors []*Connector, event model.ConnectorEvent) []*Connector {
	var filtered []*Connector
	for _, connector := range connectors {
		if connector.activationEvent == event {
			filtered = append(filtered, connector)
		}
	}
	return filtered
}

// Operation assigns the result of an expression to its left operand.
type Operation struct {
	LeftOperand  LeftOperand
	Type         model.OperationType
	Operator     string
	RightOperand Expression
}

type LeftOperand struct {
	Name string
	Type model.LeftOperandType
}

func newOperations(designs []model.Operation) []Operation {
	if len(designs) == 0 {
		return nil
	}

	operations := make([]Operation, len(designs))
	for i, design := range designs {
		operations[i] = Operation{
			LeftOperand:  LeftOperand{Name: design.LeftOperand.Name, Type: design.LeftOperand.Type},
			Type:         design.Type,
			Operator:     design.Operator,
			RightOperand: NewExpression(design.RightOperand),
		}
	}
	return operations
}

type DataDefinition struct {
	Name         string
	Description  string
	ClassName    string
	Transient    bool
	Multiple     bool
	DefaultValue Expression
}

func newDataDefinitions(designs []model.DataDefinition) []DataDefinition {
	if len(designs) == 0 {
		return nil
	}

	dataDefinitions := make([]DataDefinition, len(designs))
	for i, design := range designs {
		dataDefinitions[i] = DataDefinition{
			Name:         design.Name,
			Description:  design.Description,
			ClassName:    design.ClassName,
			Transient:    design.Transient,
			Multiple:     design.Multiple,
			DefaultValue: NewExpression(design.DefaultValue),
		}
	}
	return dataDefinitions
}

type BusinessDataDefinition struct {
	Name         string
	Description  string
	ClassName    string
	Multiple     bool
	DefaultValue Expression
}

func newBusinessDataDefinitions(designs []model.BusinessDataDefinition) []BusinessDataDefinition {
	if len(designs) == 0 {
		return nil
	}

	businessDataDefinitions := make([]BusinessDataDefinition, len(designs))
	for i, design := range designs {
		businessDataDefinitions[i] = BusinessDataDefinition{
			Name:         design.Name,
			Description:  design.Description,
			ClassName:    design.ClassName,
			Multiple:     design.Multiple,
			DefaultValue: NewExpression(design.DefaultValue),
		}
	}
	return businessDataDefinitions
}

type DocumentDefinition struct {
	Name         string
	Description  string
	MimeType     string
	FileName     string
	Url          string
	File         string
	Multiple     bool
	InitialValue Expression
}

func newDocumentDefinition(design model.DocumentDefinition) DocumentDefinition {
	return DocumentDefinition{
		Name:         design.Name,
		Description:  design.Description,
		MimeType:     design.MimeType,
		FileName:     design.FileName,
		Url:          design.Url,
		File:         design.File,
		Multiple:     design.Multiple,
		InitialValue: NewExpression(design.InitialValue),
	}
}

// UserFilter selects the users, a human task can be assigned to.
type UserFilter struct {
	Name     string
	FilterId string
	Version  string

	inputs []NamedExpression
}

func (f UserFilter) Inputs() []NamedExpression {
	return slices.Clone(f.inputs)
}

func newUserFilter(design *model.UserFilter) *UserFilter {
	if design == nil {
		return nil
	}
	return &UserFilter{
		Name:     design.Name,
		FilterId: design.FilterId,
		Version:  design.Version,
		inputs:   newNamedExpressions(design.Inputs),
	}
}
