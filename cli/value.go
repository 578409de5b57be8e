package cli

import (
	"fmt"

	"github.com/gclaussn/go-bpmn-model/model"
)

// flowNodeTypeValue is a custom flag value for a flow node type.
type flowNodeTypeValue model.FlowNodeType

func (v *flowNodeTypeValue) Set(s string) error {
	flowNodeType := model.MapFlowNodeType(s)
	if flowNodeType == 0 {
		return fmt.Errorf("invalid flow node type %s", s)
	}

	*v = flowNodeTypeValue(flowNodeType)
	return nil
}

func (v flowNodeTypeValue) String() string {
	return model.FlowNodeType(v).String()
}

func (v flowNodeTypeValue) Type() string {
	return "flowNodeType"
}

// formatValue is a custom flag value for a design format.
type formatValue model.Format

func (v *formatValue) Set(s string) error {
	format := model.MapFormat(s)
	if format == 0 {
		return fmt.Errorf("invalid format %s", s)
	}

	*v = formatValue(format)
	return nil
}

func (v formatValue) String() string {
	return model.Format(v).String()
}

func (v formatValue) Type() string {
	return "format"
}
