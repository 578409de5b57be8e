package model

import "fmt"

// FlowNodeType describes the different flow node types - activities, gateways and events.
type FlowNodeType int

const (
	NodeAutomaticTask FlowNodeType = iota + 1
	NodeBoundaryEvent
	NodeCallActivity
	NodeEndEvent
	NodeGateway
	NodeIntermediateCatchEvent
	NodeIntermediateThrowEvent
	NodeManualTask
	NodeReceiveTask
	NodeSendTask
	NodeStartEvent
	NodeSubProcess
	NodeUserTask
)

func MapFlowNodeType(s string) FlowNodeType {
	switch s {
	case "AUTOMATIC_TASK":
		return NodeAutomaticTask
	case "BOUNDARY_EVENT":
		return NodeBoundaryEvent
	case "CALL_ACTIVITY":
		return NodeCallActivity
	case "END_EVENT":
		return NodeEndEvent
	case "GATEWAY":
		return NodeGateway
	case "INTERMEDIATE_CATCH_EVENT":
		return NodeIntermediateCatchEvent
	case "INTERMEDIATE_THROW_EVENT":
		return NodeIntermediateThrowEvent
	case "MANUAL_TASK":
		return NodeManualTask
	case "RECEIVE_TASK":
		return NodeReceiveTask
	case "SEND_TASK":
		return NodeSendTask
	case "START_EVENT":
		return NodeStartEvent
	case "SUB_PROCESS":
		return NodeSubProcess
	case "USER_TASK":
		return NodeUserTask
	default:
		return 0
	}
}

func (v FlowNodeType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v FlowNodeType) String() string {
	switch v {
	case NodeAutomaticTask:
		return "AUTOMATIC_TASK"
	case NodeBoundaryEvent:
		return "BOUNDARY_EVENT"
	case NodeCallActivity:
		return "CALL_ACTIVITY"
	case NodeEndEvent:
		return "END_EVENT"
	case NodeGateway:
		return "GATEWAY"
	case NodeIntermediateCatchEvent:
		return "INTERMEDIATE_CATCH_EVENT"
	case NodeIntermediateThrowEvent:
		return "INTERMEDIATE_THROW_EVENT"
	case NodeManualTask:
		return "MANUAL_TASK"
	case NodeReceiveTask:
		return "RECEIVE_TASK"
	case NodeSendTask:
		return "SEND_TASK"
	case NodeStartEvent:
		return "START_EVENT"
	case NodeSubProcess:
		return "SUB_PROCESS"
	case NodeUserTask:
		return "USER_TASK"
	default:
		return ""
	}
}

func (v *FlowNodeType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapFlowNodeType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid flow node type data %s", s)
	}
	return nil
}

// GatewayType determines the join and split semantics of a gateway.
type GatewayType int

const (
	GatewayComplex GatewayType = iota + 1
	GatewayExclusive
	GatewayInclusive
	GatewayParallel
)

func MapGatewayType(s string) GatewayType {
	switch s {
	case "COMPLEX":
		return GatewayComplex
	case "EXCLUSIVE":
		return GatewayExclusive
	case "INCLUSIVE":
		return GatewayInclusive
	case "PARALLEL":
		return GatewayParallel
	default:
		return 0
	}
}

func (v GatewayType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v GatewayType) String() string {
	switch v {
	case GatewayComplex:
		return "COMPLEX"
	case GatewayExclusive:
		return "EXCLUSIVE"
	case GatewayInclusive:
		return "INCLUSIVE"
	case GatewayParallel:
		return "PARALLEL"
	default:
		return ""
	}
}

func (v *GatewayType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapGatewayType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid gateway type data %s", s)
	}
	return nil
}
