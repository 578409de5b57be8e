package model

import "fmt"

// TimerType tags the expression of a timer trigger.
//
//   - [TimerCycle]: CRON expression
//   - [TimerDate]: a point in time
//   - [TimerDuration]: milliseconds or an ISO 8601 duration
type TimerType int

const (
	TimerCycle TimerType = iota + 1
	TimerDate
	TimerDuration
)

func MapTimerType(s string) TimerType {
	switch s {
	case "CYCLE":
		return TimerCycle
	case "DATE":
		return TimerDate
	case "DURATION":
		return TimerDuration
	default:
		return 0
	}
}

func (v TimerType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v TimerType) String() string {
	switch v {
	case TimerCycle:
		return "CYCLE"
	case TimerDate:
		return "DATE"
	case TimerDuration:
		return "DURATION"
	default:
		return ""
	}
}

func (v *TimerType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapTimerType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid timer type data %s", s)
	}
	return nil
}

// ConnectorEvent is the activation event of a connector.
type ConnectorEvent int

const (
	ConnectorOnEnter ConnectorEvent = iota + 1
	ConnectorOnFinish
)

func MapConnectorEvent(s string) ConnectorEvent {
	switch s {
	case "ON_ENTER":
		return ConnectorOnEnter
	case "ON_FINISH":
		return ConnectorOnFinish
	default:
		return 0
	}
}

func (v ConnectorEvent) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v ConnectorEvent) String() string {
	switch v {
	case ConnectorOnEnter:
		return "ON_ENTER"
	case ConnectorOnFinish:
		return "ON_FINISH"
	default:
		return ""
	}
}

func (v *ConnectorEvent) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapConnectorEvent(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid connector event data %s", s)
	}
	return nil
}

// FailAction determines what happens, when a connector fails.
type FailAction int

const (
	FailErrorEvent FailAction = iota + 1
	FailFail
	FailIgnore
)

func MapFailAction(s string) FailAction {
	switch s {
	case "ERROR_EVENT":
		return FailErrorEvent
	case "FAIL":
		return FailFail
	case "IGNORE":
		return FailIgnore
	default:
		return 0
	}
}

func (v FailAction) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v FailAction) String() string {
	switch v {
	case FailErrorEvent:
		return "ERROR_EVENT"
	case FailFail:
		return "FAIL"
	case FailIgnore:
		return "IGNORE"
	default:
		return ""
	}
}

func (v *FailAction) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapFailAction(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid fail action data %s", s)
	}
	return nil
}

type TaskPriority int

const (
	PriorityAboveNormal TaskPriority = iota + 1
	PriorityHighest
	PriorityLowest
	PriorityNormal
	PriorityUnderNormal
)

func MapTaskPriority(s string) TaskPriority {
	switch s {
	case "ABOVE_NORMAL":
		return PriorityAboveNormal
	case "HIGHEST":
		return PriorityHighest
	case "LOWEST":
		return PriorityLowest
	case "NORMAL":
		return PriorityNormal
	case "UNDER_NORMAL":
		return PriorityUnderNormal
	default:
		return 0
	}
}

func (v TaskPriority) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v TaskPriority) String() string {
	switch v {
	case PriorityAboveNormal:
		return "ABOVE_NORMAL"
	case PriorityHighest:
		return "HIGHEST"
	case PriorityLowest:
		return "LOWEST"
	case PriorityNormal:
		return "NORMAL"
	case PriorityUnderNormal:
		return "UNDER_NORMAL"
	default:
		return ""
	}
}

func (v *TaskPriority) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapTaskPriority(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid task priority data %s", s)
	}
	return nil
}

// InputType is the type of a simple contract input.
type InputType int

const (
	InputBoolean InputType = iota + 1
	InputByteArray
	InputDate
	InputDecimal
	InputFile
	InputInteger
	InputLocalDate
	InputLocalDateTime
	InputLong
	InputOffsetDateTime
	InputText
)

func MapInputType(s string) InputType {
	switch s {
	case "BOOLEAN":
		return InputBoolean
	case "BYTE_ARRAY":
		return InputByteArray
	case "DATE":
		return InputDate
	case "DECIMAL":
		return InputDecimal
	case "FILE":
		return InputFile
	case "INTEGER":
		return InputInteger
	case "LOCALDATE":
		return InputLocalDate
	case "LOCALDATETIME":
		return InputLocalDateTime
	case "LONG":
		return InputLong
	case "OFFSETDATETIME":
		return InputOffsetDateTime
	case "TEXT":
		return InputText
	default:
		return 0
	}
}

func (v InputType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v InputType) String() string {
	switch v {
	case InputBoolean:
		return "BOOLEAN"
	case InputByteArray:
		return "BYTE_ARRAY"
	case InputDate:
		return "DATE"
	case InputDecimal:
		return "DECIMAL"
	case InputFile:
		return "FILE"
	case InputInteger:
		return "INTEGER"
	case InputLocalDate:
		return "LOCALDATE"
	case InputLocalDateTime:
		return "LOCALDATETIME"
	case InputLong:
		return "LONG"
	case InputOffsetDateTime:
		return "OFFSETDATETIME"
	case InputText:
		return "TEXT"
	default:
		return ""
	}
}

func (v *InputType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapInputType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid input type data %s", s)
	}
	return nil
}

type ConstraintType int

const (
	ConstraintCustom ConstraintType = iota + 1
	ConstraintMandatory
)

func MapConstraintType(s string) ConstraintType {
	switch s {
	case "CUSTOM":
		return ConstraintCustom
	case "MANDATORY":
		return ConstraintMandatory
	default:
		return 0
	}
}

func (v ConstraintType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v ConstraintType) String() string {
	switch v {
	case ConstraintCustom:
		return "CUSTOM"
	case ConstraintMandatory:
		return "MANDATORY"
	default:
		return ""
	}
}

func (v *ConstraintType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapConstraintType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid constraint type data %s", s)
	}
	return nil
}

// ExpressionType describes how the content of an expression is interpreted by an expression evaluator.
type ExpressionType int

const (
	ExpressionBusinessData ExpressionType = iota + 1
	ExpressionCondition
	ExpressionConstant
	ExpressionDocument
	ExpressionInput
	ExpressionParameter
	ExpressionScript
	ExpressionVariable
)

func MapExpressionType(s string) ExpressionType {
	switch s {
	case "BUSINESS_DATA":
		return ExpressionBusinessData
	case "CONDITION":
		return ExpressionCondition
	case "CONSTANT":
		return ExpressionConstant
	case "DOCUMENT":
		return ExpressionDocument
	case "INPUT":
		return ExpressionInput
	case "PARAMETER":
		return ExpressionParameter
	case "SCRIPT":
		return ExpressionScript
	case "VARIABLE":
		return ExpressionVariable
	default:
		return 0
	}
}

func (v ExpressionType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v ExpressionType) String() string {
	switch v {
	case ExpressionBusinessData:
		return "BUSINESS_DATA"
	case ExpressionCondition:
		return "CONDITION"
	case ExpressionConstant:
		return "CONSTANT"
	case ExpressionDocument:
		return "DOCUMENT"
	case ExpressionInput:
		return "INPUT"
	case ExpressionParameter:
		return "PARAMETER"
	case ExpressionScript:
		return "SCRIPT"
	case ExpressionVariable:
		return "VARIABLE"
	default:
		return ""
	}
}

func (v *ExpressionType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapExpressionType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid expression type data %s", s)
	}
	return nil
}

type OperationType int

const (
	OperationAssignment OperationType = iota + 1
	OperationBusinessDataSetter
	OperationDocumentCreateUpdate
	OperationMethod
	OperationXPathUpdateQuery
)

func MapOperationType(s string) OperationType {
	switch s {
	case "ASSIGNMENT":
		return OperationAssignment
	case "BUSINESS_DATA_SETTER":
		return OperationBusinessDataSetter
	case "DOCUMENT_CREATE_UPDATE":
		return OperationDocumentCreateUpdate
	case "METHOD":
		return OperationMethod
	case "XPATH_UPDATE_QUERY":
		return OperationXPathUpdateQuery
	default:
		return 0
	}
}

func (v OperationType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v OperationType) String() string {
	switch v {
	case OperationAssignment:
		return "ASSIGNMENT"
	case OperationBusinessDataSetter:
		return "BUSINESS_DATA_SETTER"
	case OperationDocumentCreateUpdate:
		return "DOCUMENT_CREATE_UPDATE"
	case OperationMethod:
		return "METHOD"
	case OperationXPathUpdateQuery:
		return "XPATH_UPDATE_QUERY"
	default:
		return ""
	}
}

func (v *OperationType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapOperationType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid operation type data %s", s)
	}
	return nil
}

// LeftOperandType describes the target of an operation.
type LeftOperandType int

const (
	LeftOperandBusinessData LeftOperandType = iota + 1
	LeftOperandData
	LeftOperandDocument
	LeftOperandDocumentList
	LeftOperandExternalData
	LeftOperandSearchIndex
	LeftOperandTransientData
)

func MapLeftOperandType(s string) LeftOperandType {
	switch s {
	case "BUSINESS_DATA":
		return LeftOperandBusinessData
	case "DATA":
		return LeftOperandData
	case "DOCUMENT":
		return LeftOperandDocument
	case "DOCUMENT_LIST":
		return LeftOperandDocumentList
	case "EXTERNAL_DATA":
		return LeftOperandExternalData
	case "SEARCH_INDEX":
		return LeftOperandSearchIndex
	case "TRANSIENT_DATA":
		return LeftOperandTransientData
	default:
		return 0
	}
}

func (v LeftOperandType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v LeftOperandType) String() string {
	switch v {
	case LeftOperandBusinessData:
		return "BUSINESS_DATA"
	case LeftOperandData:
		return "DATA"
	case LeftOperandDocument:
		return "DOCUMENT"
	case LeftOperandDocumentList:
		return "DOCUMENT_LIST"
	case LeftOperandExternalData:
		return "EXTERNAL_DATA"
	case LeftOperandSearchIndex:
		return "SEARCH_INDEX"
	case LeftOperandTransientData:
		return "TRANSIENT_DATA"
	default:
		return ""
	}
}

func (v *LeftOperandType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapLeftOperandType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid left operand type data %s", s)
	}
	return nil
}

// CallableElementType is the kind of element, a call activity instantiates.
type CallableElementType int

const (
	CallableProcess CallableElementType = iota + 1
)

func MapCallableElementType(s string) CallableElementType {
	switch s {
	case "PROCESS":
		return CallableProcess
	default:
		return 0
	}
}

func (v CallableElementType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v CallableElementType) String() string {
	switch v {
	case CallableProcess:
		return "PROCESS"
	default:
		return ""
	}
}

func (v *CallableElementType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapCallableElementType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid callable element type data %s", s)
	}
	return nil
}
