package definition

import (
	"slices"

	"github.com/gclaussn/go-bpmn-model/model"
)

type TriggerType int

const (
	TriggerError TriggerType = iota + 1
	TriggerMessage
	TriggerSignal
	TriggerTerminate
	TriggerTimer
)

func MapTriggerType(s string) TriggerType {
	switch s {
	case "ERROR":
		return TriggerError
	case "MESSAGE":
		return TriggerMessage
	case "SIGNAL":
		return TriggerSignal
	case "TERMINATE":
		return TriggerTerminate
	case "TIMER":
		return TriggerTimer
	default:
		return 0
	}
}

func (v TriggerType) String() string {
	switch v {
	case TriggerError:
		return "ERROR"
	case TriggerMessage:
		return "MESSAGE"
	case TriggerSignal:
		return "SIGNAL"
	case TriggerTerminate:
		return "TERMINATE"
	case TriggerTimer:
		return "TIMER"
	default:
		return "UNKNOWN"
	}
}

// Trigger is a catch trigger: [*MessageTrigger], [*TimerTrigger], [*SignalTrigger] or [*ErrorTrigger].
type Trigger interface {
	TriggerType() TriggerType

	catchTrigger()
}

// ThrowTrigger is a throw trigger: [*ThrowMessageTrigger], [*ThrowSignalTrigger], [*ThrowErrorTrigger] or [*TerminateTrigger].
type ThrowTrigger interface {
	TriggerType() TriggerType

	throwTrigger()
}

// Correlation is a key/value expression pair, used to match a message.
type Correlation struct {
	Key   Expression
	Value Expression
}

func newCorrelations(designs []model.Correlation) []Correlation {
	if len(designs) == 0 {
		return nil
	}

	correlations := make([]Correlation, len(designs))
	for i, design := range designs {
		correlations[i] = Correlation{Key: NewExpression(&design.Key), Value: NewExpression(&design.Value)}
	}
	return correlations
}

type MessageTrigger struct {
	messageName  string
	correlations []Correlation
}

func (t *MessageTrigger) MessageName() string {
	return t.messageName
}

// Correlations returns the correlations in declaration order. Duplicates are kept.
func (t *MessageTrigger) Correlations() []Correlation {
	return slices.Clone(t.correlations)
}

func (*MessageTrigger) TriggerType() TriggerType {
	return TriggerMessage
}

func (*MessageTrigger) catchTrigger() {}

type TimerTrigger struct {
	timerType  model.TimerType
	expression Expression
}

func (t *TimerTrigger) TimerType() model.TimerType {
	return t.timerType
}

func (t *TimerTrigger) Expression() Expression {
	return t.expression
}

func (*TimerTrigger) TriggerType() TriggerType {
	return TriggerTimer
}

func (*TimerTrigger) catchTrigger() {}

type SignalTrigger struct {
	signalName string
}

func (t *SignalTrigger) SignalName() string {
	return t.signalName
}

func (*SignalTrigger) TriggerType() TriggerType {
	return TriggerSignal
}

func (*SignalTrigger) catchTrigger() {}

// ErrorTrigger catches errors with a specific code or all errors, if the code is empty.
type ErrorTrigger struct {
	errorCode string
}

func (t *ErrorTrigger) ErrorCode() string {
	return t.errorCode
}

func (*ErrorTrigger) TriggerType() TriggerType {
	return TriggerError
}

func (*ErrorTrigger) catchTrigger() {}

type ThrowMessageTrigger struct {
	messageName          string
	targetProcess        Expression
	targetProcessVersion Expression
	targetFlowNode       Expression
	correlations         []Correlation
	content              []MessageContent
}

// MessageContent is a named value, sent with a message.
type MessageContent struct {
	Name  string
	Value Expression
}

func (t *ThrowMessageTrigger) MessageName() string {
	return t.messageName
}

// TargetProcess returns the expression, evaluating the name of the receiving process.
func (t *ThrowMessageTrigger) TargetProcess() Expression {
	return t.targetProcess
}

func (t *ThrowMessageTrigger) TargetProcessVersion() Expression {
	return t.targetProcessVersion
}

func (t *ThrowMessageTrigger) TargetFlowNode() Expression {
	return t.targetFlowNode
}

func (t *ThrowMessageTrigger) Correlations() []Correlation {
	return slices.Clone(t.correlations)
}

func (t *ThrowMessageTrigger) Content() []MessageContent {
	return slices.Clone(t.content)
}

func (*ThrowMessageTrigger) TriggerType() TriggerType {
	return TriggerMessage
}

func (*ThrowMessageTrigger) throwTrigger() {}

type ThrowSignalTrigger struct {
	signalName string
}

func (t *ThrowSignalTrigger) SignalName() string {
	return t.signalName
}

func (*ThrowSignalTrigger) TriggerType() TriggerType {
	return TriggerSignal
}

func (*ThrowSignalTrigger) throwTrigger() {}

type ThrowErrorTrigger struct {
	errorCode string
}

func (t *ThrowErrorTrigger) ErrorCode() string {
	return t.errorCode
}

func (*ThrowErrorTrigger) TriggerType() TriggerType {
	return TriggerError
}

func (*ThrowErrorTrigger) throwTrigger() {}

// TerminateTrigger ends all active flow nodes of the enclosing process or sub process instance.
type TerminateTrigger struct{}

func (*TerminateTrigger) TriggerType() TriggerType {
	return TriggerTerminate
}

func (*TerminateTrigger) throwTrigger() {}
