package definition

import (
	"fmt"
	"slices"

	"github.com/gclaussn/go-bpmn-model/model"
)

// Expression describes a computation, which is evaluated by an external expression evaluator.
// An expression is immutable. The zero value represents an absent expression.
type Expression struct {
	name           string
	expressionType model.ExpressionType
	content        string
	returnType     string
	interpreter    string
	dependencies   []Expression
}

// NewExpression creates an expression from its design. A nil design results in the zero value.
func NewExpression(e *model.Expression) Expression {
	if e == nil {
		return Expression{}
	}

	var dependencies []Expression
	if len(e.Dependencies) != 0 {
		dependencies = make([]Expression, len(e.Dependencies))
		for i := range e.Dependencies {
			dependencies[i] = NewExpression(&e.Dependencies[i])
		}
	}

	return Expression{
		name:           e.Name,
		expressionType: e.Type,
		content:        e.Content,
		returnType:     e.ReturnType,
		interpreter:    e.Interpreter,
		dependencies:   dependencies,
	}
}

func (e Expression) Name() string {
	return e.name
}

func (e Expression) Type() model.ExpressionType {
	return e.expressionType
}

func (e Expression) Content() string {
	return e.content
}

func (e Expression) ReturnType() string {
	return e.returnType
}

func (e Expression) Interpreter() string {
	return e.interpreter
}

func (e Expression) Dependencies() []Expression {
	return slices.Clone(e.dependencies)
}

// IsZero determines if the expression is absent.
func (e Expression) IsZero() bool {
	return e.expressionType == 0 && e.content == "" && len(e.dependencies) == 0
}

func (e Expression) String() string {
	if e.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%s", e.expressionType, e.content)
}

// NamedExpression is an expression, identified by a name - e.g. a connector input or a context entry.
type NamedExpression struct {
	Name       string
	Expression Expression
}

func newNamedExpressions(designs []model.NamedExpression) []NamedExpression {
	if len(designs) == 0 {
		return nil
	}

	namedExpressions := make([]NamedExpression, len(designs))
	for i, design := range designs {
		namedExpressions[i] = NamedExpression{Name: design.Name, Expression: NewExpression(&design.Expression)}
	}
	return namedExpressions
}
