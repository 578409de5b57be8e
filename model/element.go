package model

// ProcessDefinition is the design-time description of a process.
// It is produced by a builder or decoded from a JSON, YAML or BPMN XML file and consumed by the definition package.
type ProcessDefinition struct {
	Name        string `json:"name" validate:"required,element_name"` // Name of the process - unique together with version.
	Version     string `json:"version" validate:"required"`           // Version of the process.
	Description string `json:"description,omitempty"`

	Actors         []Actor           `json:"actors,omitempty" validate:"dive"`
	ActorInitiator *Actor            `json:"actorInitiator,omitempty"` // Actor that is allowed to start the process.
	Parameters     []Parameter       `json:"parameters,omitempty" validate:"dive"`
	Contract       *Contract         `json:"contract,omitempty"`
	Context        []NamedExpression `json:"context,omitempty" validate:"dive"` // Entries, evaluated at instantiation.
	StringIndexes  []StringIndex     `json:"stringIndexes,omitempty" validate:"max=5,dive"`

	FlowElements FlowElementContainer `json:"flowElements"`
}

// FlowElementContainer groups the elements of a process or a sub process by kind.
type FlowElementContainer struct {
	Activities              ActivityList             `json:"activities,omitempty" validate:"dive"`
	Gateways                []Gateway                `json:"gateways,omitempty" validate:"dive"`
	StartEvents             []StartEvent             `json:"startEvents,omitempty" validate:"dive"`
	IntermediateCatchEvents []IntermediateCatchEvent `json:"intermediateCatchEvents,omitempty" validate:"dive"`
	IntermediateThrowEvents []IntermediateThrowEvent `json:"intermediateThrowEvents,omitempty" validate:"dive"`
	EndEvents               []EndEvent               `json:"endEvents,omitempty" validate:"dive"`
	Transitions             []Transition             `json:"transitions,omitempty" validate:"dive"`

	Connectors              []Connector              `json:"connectors,omitempty" validate:"dive"`
	DataDefinitions         []DataDefinition         `json:"dataDefinitions,omitempty" validate:"dive"`
	BusinessDataDefinitions []BusinessDataDefinition `json:"businessDataDefinitions,omitempty" validate:"dive"`
	Documents               []DocumentDefinition     `json:"documents,omitempty" validate:"dive"`
}

// ActivityByName returns the activity with the given name, or nil, if no such activity exists.
func (c *FlowElementContainer) ActivityByName(name string) Activity {
	for _, activity := range c.Activities {
		if activity != nil && activity.Base().Name == name {
			return activity
		}
	}
	return nil
}

// FlowNode contains the fields, shared by all activities, gateways and events.
type FlowNode struct {
	Id          int64  `json:"id,omitempty" validate:"gte=0"` // Optional ID - generated, if not set.
	Name        string `json:"name" validate:"required,element_name"`
	Description string `json:"description,omitempty"`

	DisplayName                       *Expression `json:"displayName,omitempty"`
	DisplayDescription                *Expression `json:"displayDescription,omitempty"`
	DisplayDescriptionAfterCompletion *Expression `json:"displayDescriptionAfterCompletion,omitempty"`

	// Names of the incoming and outgoing transitions.
	// If not set, they are derived from the transitions of the enclosing container.
	Incoming          []string `json:"incoming,omitempty"`
	Outgoing          []string `json:"outgoing,omitempty"`
	DefaultTransition string   `json:"defaultTransition,omitempty"`

	Connectors []Connector `json:"connectors,omitempty" validate:"dive"`
}

// Activity is implemented by all design-time activities.
//
// The set of activities, supported by the definition package, is closed:
// [AutomaticTask], [UserTask], [ManualTask], [ReceiveTask], [SendTask], [CallActivity] and [SubProcess].
type Activity interface {
	Base() *ActivityBase
	Type() FlowNodeType
}

// ActivityList is a list of activities, which is decoded polymorphically, using the "type" of each item.
type ActivityList []Activity

type ActivityBase struct {
	FlowNode

	DataDefinitions         []DataDefinition         `json:"dataDefinitions,omitempty" validate:"dive"`
	BusinessDataDefinitions []BusinessDataDefinition `json:"businessDataDefinitions,omitempty" validate:"dive"`
	Operations              []Operation              `json:"operations,omitempty" validate:"dive"` // Executed on completion.

	StandardLoop  *StandardLoop  `json:"standardLoop,omitempty"`
	MultiInstance *MultiInstance `json:"multiInstance,omitempty"`

	BoundaryEvents []BoundaryEvent `json:"boundaryEvents,omitempty" validate:"dive"`
}

func (a *ActivityBase) Base() *ActivityBase {
	return a
}

type AutomaticTask struct {
	ActivityBase
}

func (*AutomaticTask) Type() FlowNodeType {
	return NodeAutomaticTask
}

// HumanTask contains the fields, shared by user and manual tasks.
type HumanTask struct {
	ActivityBase

	ActorName        string       `json:"actorName,omitempty"`
	UserFilter       *UserFilter  `json:"userFilter,omitempty"`
	Priority         TaskPriority `json:"priority,omitempty"`
	ExpectedDuration int64        `json:"expectedDuration,omitempty" validate:"gte=0"` // Expected duration in milliseconds.
}

type UserTask struct {
	HumanTask

	Contract *Contract `json:"contract,omitempty"`
}

func (*UserTask) Type() FlowNodeType {
	return NodeUserTask
}

type ManualTask struct {
	HumanTask
}

func (*ManualTask) Type() FlowNodeType {
	return NodeManualTask
}

type ReceiveTask struct {
	ActivityBase

	Message *MessageTrigger `json:"message" validate:"required"`
}

func (*ReceiveTask) Type() FlowNodeType {
	return NodeReceiveTask
}

type SendTask struct {
	ActivityBase

	Message *ThrowMessageTrigger `json:"message" validate:"required"`
}

func (*SendTask) Type() FlowNodeType {
	return NodeSendTask
}

type CallActivity struct {
	ActivityBase

	CallableElement        *Expression         `json:"callableElement" validate:"required"`
	CallableElementVersion *Expression         `json:"callableElementVersion,omitempty"`
	CallableElementType    CallableElementType `json:"callableElementType,omitempty"` // Defaults to PROCESS.

	DataInputOperations  []Operation       `json:"dataInputOperations,omitempty" validate:"dive"`
	DataOutputOperations []Operation       `json:"dataOutputOperations,omitempty" validate:"dive"`
	ContractInputs       []NamedExpression `json:"contractInputs,omitempty" validate:"dive"`
}

func (*CallActivity) Type() FlowNodeType {
	return NodeCallActivity
}

type SubProcess struct {
	ActivityBase

	TriggeredByEvent bool                 `json:"triggeredByEvent,omitempty"`
	FlowElements     FlowElementContainer `json:"flowElements"`
}

func (*SubProcess) Type() FlowNodeType {
	return NodeSubProcess
}

type Gateway struct {
	FlowNode

	GatewayType GatewayType `json:"gatewayType" validate:"required"`
}

// CatchTriggers are the mutually exclusive triggers of a catching event.
type CatchTriggers struct {
	Message *MessageTrigger `json:"message,omitempty"`
	Timer   *TimerTrigger   `json:"timer,omitempty"`
	Signal  *SignalTrigger  `json:"signal,omitempty"`
	Error   *ErrorTrigger   `json:"error,omitempty"`
}

// ThrowTriggers are the mutually exclusive triggers of a throwing event.
type ThrowTriggers struct {
	Message   *ThrowMessageTrigger `json:"message,omitempty"`
	Signal    *ThrowSignalTrigger  `json:"signal,omitempty"`
	Error     *ThrowErrorTrigger   `json:"error,omitempty"`
	Terminate bool                 `json:"terminate,omitempty"`
}

type StartEvent struct {
	FlowNode
	CatchTriggers

	Interrupting *bool `json:"interrupting,omitempty"` // Only relevant for event sub processes - defaults to true.
}

type IntermediateCatchEvent struct {
	FlowNode
	CatchTriggers
}

type IntermediateThrowEvent struct {
	FlowNode
	ThrowTriggers
}

type EndEvent struct {
	FlowNode
	ThrowTriggers
}

// BoundaryEvent is attached to the activity, which lists it.
type BoundaryEvent struct {
	FlowNode
	CatchTriggers

	Interrupting *bool `json:"interrupting,omitempty"` // Defaults to true.
}

// IsInterrupting determines if the event cancels the activity it is attached to.
func (e BoundaryEvent) IsInterrupting() bool {
	return e.Interrupting == nil || *e.Interrupting
}

type Transition struct {
	Id        int64       `json:"id,omitempty" validate:"gte=0"`
	Name      string      `json:"name" validate:"required,element_name"`
	Source    string      `json:"source" validate:"required"` // Name of the source flow node.
	Target    string      `json:"target" validate:"required"` // Name of the target flow node.
	Condition *Expression `json:"condition,omitempty"`
}

// Expression describes a computation, evaluated by an external expression evaluator.
type Expression struct {
	Name         string         `json:"name,omitempty"`
	Type         ExpressionType `json:"type" validate:"required"`
	Content      string         `json:"content"`
	ReturnType   string         `json:"returnType,omitempty"`
	Interpreter  string         `json:"interpreter,omitempty"`
	Dependencies []Expression   `json:"dependencies,omitempty" validate:"dive"`
}

// NamedExpression is an expression, identified by a name - e.g. a connector input or a context entry.
type NamedExpression struct {
	Name       string     `json:"name" validate:"required"`
	Expression Expression `json:"expression"`
}

type MessageTrigger struct {
	MessageName  string        `json:"messageName" validate:"required"`
	Correlations []Correlation `json:"correlations,omitempty" validate:"dive"`
}

// Correlation is a key/value expression pair, used to match a message.
type Correlation struct {
	Key   Expression `json:"key"`
	Value Expression `json:"value"`
}

type TimerTrigger struct {
	TimerType  TimerType  `json:"timerType" validate:"required"`
	Expression Expression `json:"expression"`
}

type SignalTrigger struct {
	SignalName string `json:"signalName" validate:"required"`
}

// ErrorTrigger catches errors with a specific code or, if the code is empty, all errors.
type ErrorTrigger struct {
	ErrorCode string `json:"errorCode,omitempty"`
}

type ThrowMessageTrigger struct {
	MessageName          string           `json:"messageName" validate:"required"`
	TargetProcess        *Expression      `json:"targetProcess,omitempty"` // If not set, the message is correlated with any process.
	TargetProcessVersion *Expression      `json:"targetProcessVersion,omitempty"`
	TargetFlowNode       *Expression      `json:"targetFlowNode,omitempty"`
	Correlations         []Correlation    `json:"correlations,omitempty" validate:"dive"`
	Content              []MessageContent `json:"content,omitempty" validate:"dive"`
}

type MessageContent struct {
	Name  string     `json:"name" validate:"required"`
	Value Expression `json:"value"`
}

type ThrowSignalTrigger struct {
	SignalName string `json:"signalName" validate:"required"`
}

type ThrowErrorTrigger struct {
	ErrorCode string `json:"errorCode" validate:"required"`
}

type StandardLoop struct {
	Condition  *Expression `json:"condition,omitempty"`
	TestBefore bool        `json:"testBefore,omitempty"`
	LoopMax    *Expression `json:"loopMax,omitempty"`
}

type MultiInstance struct {
	Sequential          bool        `json:"sequential,omitempty"`
	Cardinality         *Expression `json:"cardinality,omitempty"`
	CompletionCondition *Expression `json:"completionCondition,omitempty"`
	LoopDataInput       string      `json:"loopDataInput,omitempty"`
	LoopDataOutput      string      `json:"loopDataOutput,omitempty"`
	DataInputItem       string      `json:"dataInputItem,omitempty"`
	DataOutputItem      string      `json:"dataOutputItem,omitempty"`
}

type Connector struct {
	Name            string            `json:"name" validate:"required"`
	ConnectorId     string            `json:"connectorId" validate:"required"`
	Version         string            `json:"version" validate:"required"`
	ActivationEvent ConnectorEvent    `json:"activationEvent" validate:"required"`
	FailAction      FailAction        `json:"failAction,omitempty"` // Defaults to FAIL.
	ErrorCode       string            `json:"errorCode,omitempty"`  // Thrown in case of fail action ERROR_EVENT.
	Inputs          []NamedExpression `json:"inputs,omitempty" validate:"dive"`
	Outputs         []Operation       `json:"outputs,omitempty" validate:"dive"`
}

type Operation struct {
	LeftOperand  LeftOperand   `json:"leftOperand"`
	Type         OperationType `json:"type" validate:"required"`
	Operator     string        `json:"operator,omitempty"`
	RightOperand *Expression   `json:"rightOperand,omitempty"`
}

type LeftOperand struct {
	Name string          `json:"name" validate:"required"`
	Type LeftOperandType `json:"type" validate:"required"`
}

type UserFilter struct {
	Name     string            `json:"name" validate:"required"`
	FilterId string            `json:"filterId" validate:"required"`
	Version  string            `json:"version" validate:"required"`
	Inputs   []NamedExpression `json:"inputs,omitempty" validate:"dive"`
}

type DataDefinition struct {
	Name         string      `json:"name" validate:"required"`
	Description  string      `json:"description,omitempty"`
	ClassName    string      `json:"className" validate:"required"`
	Transient    bool        `json:"transient,omitempty"`
	Multiple     bool        `json:"multiple,omitempty"`
	DefaultValue *Expression `json:"defaultValue,omitempty"`
}

type BusinessDataDefinition struct {
	Name         string      `json:"name" validate:"required"`
	Description  string      `json:"description,omitempty"`
	ClassName    string      `json:"className" validate:"required"`
	Multiple     bool        `json:"multiple,omitempty"`
	DefaultValue *Expression `json:"defaultValue,omitempty"`
}

type DocumentDefinition struct {
	Name         string      `json:"name" validate:"required"`
	Description  string      `json:"description,omitempty"`
	MimeType     string      `json:"mimeType,omitempty"`
	FileName     string      `json:"fileName,omitempty"`
	Url          string      `json:"url,omitempty"`
	File         string      `json:"file,omitempty"`
	Multiple     bool        `json:"multiple,omitempty"`
	InitialValue *Expression `json:"initialValue,omitempty"`
}

type Contract struct {
	Inputs      []Input      `json:"inputs,omitempty" validate:"dive"`
	Constraints []Constraint `json:"constraints,omitempty" validate:"dive"`
}

// Input is a contract input. An input with nested inputs is complex, otherwise simple and typed.
type Input struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Multiple    bool      `json:"multiple,omitempty"`
	Type        InputType `json:"type,omitempty" validate:"required_without=Inputs"`
	Inputs      []Input   `json:"inputs,omitempty" validate:"dive"`
}

type Constraint struct {
	Name        string         `json:"name" validate:"required"`
	Expression  string         `json:"expression" validate:"required"`
	Explanation string         `json:"explanation,omitempty"`
	InputNames  []string       `json:"inputNames,omitempty"`
	Type        ConstraintType `json:"type,omitempty"` // Defaults to CUSTOM.
}

type Actor struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type Parameter struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description,omitempty"`
}

// StringIndex is a label and value pair, used for custom sortable and filterable columns.
type StringIndex struct {
	Label string      `json:"label" validate:"required"`
	Value *Expression `json:"value,omitempty"`
}
