package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeBpmn decodes the processes of a BPMN 2.0 XML document.
//
// BPMN element IDs become flow node and transition names, while BPMN element names become display names.
// Unsupported BPMN elements are skipped.
func DecodeBpmn(bpmnXmlReader io.Reader) ([]*ProcessDefinition, error) {
	var (
		definitions       = newBpmnDefinitions()
		definitionsParsed bool

		processes  []*ProcessDefinition
		containers []*bpmnContainer
		frames     []*bpmnFrame
		depth      int

		chars      strings.Builder
		collectFor string // local name of the element, whose character data is collected
	)

	container := func() *bpmnContainer {
		if len(containers) == 0 {
			return nil
		}
		return containers[len(containers)-1]
	}

	frame := func() *bpmnFrame {
		if len(frames) == 0 {
			return nil
		}
		return frames[len(frames)-1]
	}

	pushFrame := func(f *bpmnFrame) {
		f.depth = depth
		frames = append(frames, f)
	}

	collect := func(localName string) {
		chars.Reset()
		collectFor = localName
	}

	addActivity := func(activity Activity, attributes []xml.Attr) {
		c := container()

		base := activity.Base()
		base.FlowNode = newFlowNode(attributes)

		c.elements.Activities = append(c.elements.Activities, activity)

		pushFrame(&bpmnFrame{
			node:     &base.FlowNode,
			activity: base,
		})
	}

	decoder := xml.NewDecoder(bpmnXmlReader)

	count := 0
	for {
		token, err := decoder.Token()
		if token == nil || err == io.EOF {
			if count == 0 {
				return nil, errors.New("XML is empty")
			}
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode XML: %v", err)
		}

		count++

		switch t := token.(type) {
		case xml.StartElement:
			depth++

			c := container()
			f := frame()

			if c == nil {
				switch t.Name.Local {
				case "definitions":
					definitionsParsed = true
				case "error":
					definitions.errors[getAttrValue(t.Attr, "id")] = getAttrValue(t.Attr, "errorCode")
				case "message":
					definitions.messages[getAttrValue(t.Attr, "id")] = getAttrValue(t.Attr, "name")
				case "signal":
					definitions.signals[getAttrValue(t.Attr, "id")] = getAttrValue(t.Attr, "name")
				case "process":
					process := &ProcessDefinition{
						Name:        getAttrValue(t.Attr, "id"),
						Version:     getAttrValueWithDefault(t.Attr, "versionTag", "1.0"),
						Description: getAttrValue(t.Attr, "name"),
					}

					processes = append(processes, process)
					containers = append(containers, &bpmnContainer{depth: depth, elements: &process.FlowElements})
				}
				continue
			}

			switch t.Name.Local {
			// activities
			case "businessRuleTask", "scriptTask", "serviceTask", "task":
				addActivity(&AutomaticTask{}, t.Attr)
			case "callActivity":
				callActivity := &CallActivity{
					CallableElement:     newConstant(getAttrValue(t.Attr, "calledElement")),
					CallableElementType: CallableProcess,
				}
				addActivity(callActivity, t.Attr)
			case "manualTask":
				addActivity(&ManualTask{}, t.Attr)
			case "receiveTask":
				trigger := &MessageTrigger{}
				definitions.resolveMessage(getAttrValue(t.Attr, "messageRef"), &trigger.MessageName)
				addActivity(&ReceiveTask{Message: trigger}, t.Attr)
			case "sendTask":
				trigger := &ThrowMessageTrigger{}
				definitions.resolveMessage(getAttrValue(t.Attr, "messageRef"), &trigger.MessageName)
				addActivity(&SendTask{Message: trigger}, t.Attr)
			case "subProcess":
				triggeredByEvent, _ := strconv.ParseBool(getAttrValue(t.Attr, "triggeredByEvent"))

				subProcess := &SubProcess{TriggeredByEvent: triggeredByEvent}
				addActivity(subProcess, t.Attr)

				containers = append(containers, &bpmnContainer{depth: depth, elements: &subProcess.FlowElements})
			case "userTask":
				userTask := &UserTask{}
				userTask.ActorName = getAttrValue(t.Attr, "assignee")
				addActivity(userTask, t.Attr)
			// gateways
			case "complexGateway", "exclusiveGateway", "inclusiveGateway", "parallelGateway":
				gateway := &Gateway{
					FlowNode:    newFlowNode(t.Attr),
					GatewayType: mapGatewayElement(t.Name.Local),
				}
				pushFrame(&bpmnFrame{
					node: &gateway.FlowNode,
					finish: func() {
						c.elements.Gateways = append(c.elements.Gateways, *gateway)
					},
				})
			// events
			case "boundaryEvent":
				cancelActivity, _ := strconv.ParseBool(getAttrValueWithDefault(t.Attr, "cancelActivity", "true"))

				event := &BoundaryEvent{FlowNode: newFlowNode(t.Attr), Interrupting: &cancelActivity}
				attachedTo := getAttrValue(t.Attr, "attachedToRef")
				pushFrame(&bpmnFrame{
					node:  &event.FlowNode,
					catch: &event.CatchTriggers,
					finish: func() {
						c.boundaryEvents = append(c.boundaryEvents, bpmnBoundaryEvent{attachedTo: attachedTo, event: event})
					},
				})
			case "endEvent":
				event := &EndEvent{FlowNode: newFlowNode(t.Attr)}
				pushFrame(&bpmnFrame{
					node:  &event.FlowNode,
					throw: &event.ThrowTriggers,
					finish: func() {
						c.elements.EndEvents = append(c.elements.EndEvents, *event)
					},
				})
			case "intermediateCatchEvent":
				event := &IntermediateCatchEvent{FlowNode: newFlowNode(t.Attr)}
				pushFrame(&bpmnFrame{
					node:  &event.FlowNode,
					catch: &event.CatchTriggers,
					finish: func() {
						c.elements.IntermediateCatchEvents = append(c.elements.IntermediateCatchEvents, *event)
					},
				})
			case "intermediateThrowEvent":
				event := &IntermediateThrowEvent{FlowNode: newFlowNode(t.Attr)}
				pushFrame(&bpmnFrame{
					node:  &event.FlowNode,
					throw: &event.ThrowTriggers,
					finish: func() {
						c.elements.IntermediateThrowEvents = append(c.elements.IntermediateThrowEvents, *event)
					},
				})
			case "startEvent":
				isInterrupting, _ := strconv.ParseBool(getAttrValueWithDefault(t.Attr, "isInterrupting", "true"))

				event := &StartEvent{FlowNode: newFlowNode(t.Attr), Interrupting: &isInterrupting}
				pushFrame(&bpmnFrame{
					node:  &event.FlowNode,
					catch: &event.CatchTriggers,
					finish: func() {
						c.elements.StartEvents = append(c.elements.StartEvents, *event)
					},
				})
			// event definitions
			case "errorEventDefinition":
				errorRef := getAttrValue(t.Attr, "errorRef")
				if f == nil {
					continue
				} else if f.catch != nil {
					trigger := &ErrorTrigger{}
					definitions.resolveError(errorRef, &trigger.ErrorCode)
					f.catch.Error = trigger
				} else if f.throw != nil {
					trigger := &ThrowErrorTrigger{}
					definitions.resolveError(errorRef, &trigger.ErrorCode)
					f.throw.Error = trigger
				}
			case "messageEventDefinition":
				messageRef := getAttrValue(t.Attr, "messageRef")
				if f == nil {
					continue
				} else if f.catch != nil {
					trigger := &MessageTrigger{}
					definitions.resolveMessage(messageRef, &trigger.MessageName)
					f.catch.Message = trigger
				} else if f.throw != nil {
					trigger := &ThrowMessageTrigger{}
					definitions.resolveMessage(messageRef, &trigger.MessageName)
					f.throw.Message = trigger
				}
			case "signalEventDefinition":
				signalRef := getAttrValue(t.Attr, "signalRef")
				if f == nil {
					continue
				} else if f.catch != nil {
					trigger := &SignalTrigger{}
					definitions.resolveSignal(signalRef, &trigger.SignalName)
					f.catch.Signal = trigger
				} else if f.throw != nil {
					trigger := &ThrowSignalTrigger{}
					definitions.resolveSignal(signalRef, &trigger.SignalName)
					f.throw.Signal = trigger
				}
			case "terminateEventDefinition":
				if f != nil && f.throw != nil {
					f.throw.Terminate = true
				}
			case "timerEventDefinition":
				if f != nil && f.catch != nil {
					f.timer = &TimerTrigger{}
					f.catch.Timer = f.timer
				}
			case "timeCycle", "timeDate", "timeDuration":
				if f != nil && f.timer != nil {
					f.timer.TimerType = mapTimerElement(t.Name.Local)
					collect(t.Name.Local)
				}
			// loops
			case "multiInstanceLoopCharacteristics":
				if f != nil && f.activity != nil {
					isSequential, _ := strconv.ParseBool(getAttrValue(t.Attr, "isSequential"))

					f.multiInstance = &MultiInstance{Sequential: isSequential}
					f.activity.MultiInstance = f.multiInstance
				}
			case "completionCondition", "loopCardinality":
				if f != nil && f.multiInstance != nil {
					collect(t.Name.Local)
				}
			case "standardLoopCharacteristics":
				if f != nil && f.activity != nil {
					testBefore, _ := strconv.ParseBool(getAttrValue(t.Attr, "testBefore"))

					f.standardLoop = &StandardLoop{TestBefore: testBefore}
					if loopMaximum := getAttrValue(t.Attr, "loopMaximum"); loopMaximum != "" {
						f.standardLoop.LoopMax = newConstant(loopMaximum)
					}
					f.activity.StandardLoop = f.standardLoop
				}
			case "loopCondition":
				if f != nil && f.standardLoop != nil {
					collect(t.Name.Local)
				}
			// sequence flows
			case "sequenceFlow":
				transition := &Transition{
					Name:   getAttrValue(t.Attr, "id"),
					Source: getAttrValue(t.Attr, "sourceRef"),
					Target: getAttrValue(t.Attr, "targetRef"),
				}
				pushFrame(&bpmnFrame{
					transition: transition,
					finish: func() {
						c.elements.Transitions = append(c.elements.Transitions, *transition)
					},
				})
			case "conditionExpression":
				if f != nil && f.transition != nil {
					collect(t.Name.Local)
				}
			case "incoming", "outgoing":
				if f != nil && f.node != nil && f.depth == depth-1 {
					collect(t.Name.Local)
				}
			}
		case xml.CharData:
			if collectFor != "" {
				chars.Write(t)
			}
		case xml.EndElement:
			f := frame()

			if collectFor != "" && collectFor == t.Name.Local {
				text := strings.TrimSpace(chars.String())

				switch collectFor {
				case "completionCondition":
					f.multiInstance.CompletionCondition = newCondition(text)
				case "conditionExpression":
					f.transition.Condition = newCondition(text)
				case "incoming":
					f.node.Incoming = append(f.node.Incoming, text)
				case "loopCardinality":
					f.multiInstance.Cardinality = &Expression{Type: ExpressionScript, Content: text, ReturnType: "int"}
				case "loopCondition":
					f.standardLoop.Condition = newCondition(text)
				case "outgoing":
					f.node.Outgoing = append(f.node.Outgoing, text)
				case "timeCycle", "timeDate", "timeDuration":
					f.timer.Expression = *newConstant(text)
				}

				collectFor = ""
			}

			if c := container(); c != nil && c.depth == depth {
				if err := c.attachBoundaryEvents(); err != nil {
					return nil, err
				}
				containers = containers[:len(containers)-1]
			}

			if f != nil && f.depth == depth {
				if f.finish != nil {
					f.finish()
				}
				frames = frames[:len(frames)-1]
			}

			depth--
		}
	}

	if !definitionsParsed {
		return nil, errors.New("no definitions found")
	}

	definitions.resolve()

	return processes, nil
}

// bpmnBoundaryEvent is a boundary event, which must be attached to an activity, after the enclosing container is parsed.
type bpmnBoundaryEvent struct {
	attachedTo string // ID of a task, sub process or call activity.
	event      *BoundaryEvent
}

type bpmnContainer struct {
	depth          int
	elements       *FlowElementContainer
	boundaryEvents []bpmnBoundaryEvent
}

func (c *bpmnContainer) attachBoundaryEvents() error {
	for _, boundaryEvent := range c.boundaryEvents {
		activity := c.elements.ActivityByName(boundaryEvent.attachedTo)
		if activity == nil {
			return fmt.Errorf("boundary event %s is not attached", boundaryEvent.event.Name)
		}

		base := activity.Base()
		base.BoundaryEvents = append(base.BoundaryEvents, *boundaryEvent.event)
	}
	return nil
}

// bpmnDefinitions holds messages, signals and errors, which are referenced by event definitions.
// References are resolved after the whole document is parsed, since they can be declared after their usage.
type bpmnDefinitions struct {
	errors   map[string]string // error ID -> error code
	messages map[string]string // message ID -> message name
	signals  map[string]string // signal ID -> signal name

	resolvers []func()
}

func newBpmnDefinitions() *bpmnDefinitions {
	return &bpmnDefinitions{
		errors:   make(map[string]string),
		messages: make(map[string]string),
		signals:  make(map[string]string),
	}
}

func (d *bpmnDefinitions) resolve() {
	for _, resolver := range d.resolvers {
		resolver()
	}
}

func (d *bpmnDefinitions) resolveError(id string, code *string) {
	*code = id
	d.resolvers = append(d.resolvers, func() {
		if v, ok := d.errors[id]; ok {
			*code = v
		}
	})
}

func (d *bpmnDefinitions) resolveMessage(id string, name *string) {
	*name = id
	d.resolvers = append(d.resolvers, func() {
		if v, ok := d.messages[id]; ok && v != "" {
			*name = v
		}
	})
}

func (d *bpmnDefinitions) resolveSignal(id string, name *string) {
	*name = id
	d.resolvers = append(d.resolvers, func() {
		if v, ok := d.signals[id]; ok && v != "" {
			*name = v
		}
	})
}

// bpmnFrame is a flow node or sequence flow, that is currently parsed.
type bpmnFrame struct {
	depth int

	node     *FlowNode
	activity *ActivityBase
	catch    *CatchTriggers
	throw    *ThrowTriggers

	multiInstance *MultiInstance
	standardLoop  *StandardLoop
	timer         *TimerTrigger
	transition    *Transition

	finish func() // adds a value typed element to its container
}

func getAttrValue(attributes []xml.Attr, name string) string {
	for i := range attributes {
		if attributes[i].Name.Local == name {
			return attributes[i].Value
		}
	}
	return ""
}

func getAttrValueWithDefault(attributes []xml.Attr, name string, defaultValue string) string {
	if value := getAttrValue(attributes, name); value != "" {
		return value
	} else {
		return defaultValue
	}
}

func mapGatewayElement(localName string) GatewayType {
	switch localName {
	case "complexGateway":
		return GatewayComplex
	case "exclusiveGateway":
		return GatewayExclusive
	case "inclusiveGateway":
		return GatewayInclusive
	case "parallelGateway":
		return GatewayParallel
	default:
		return 0
	}
}

func mapTimerElement(localName string) TimerType {
	switch localName {
	case "timeCycle":
		return TimerCycle
	case "timeDate":
		return TimerDate
	case "timeDuration":
		return TimerDuration
	default:
		return 0
	}
}

func newCondition(content string) *Expression {
	return &Expression{Type: ExpressionCondition, Content: content, ReturnType: "bool"}
}

func newConstant(content string) *Expression {
	return &Expression{Type: ExpressionConstant, Content: content, ReturnType: "string"}
}

func newFlowNode(attributes []xml.Attr) FlowNode {
	flowNode := FlowNode{
		Name:              getAttrValue(attributes, "id"),
		DefaultTransition: getAttrValue(attributes, "default"),
	}
	if name := getAttrValue(attributes, "name"); name != "" {
		flowNode.DisplayName = newConstant(name)
	}
	return flowNode
}
