package definition

import (
	"testing"

	"github.com/gclaussn/go-bpmn-model/model"
)

func mustBuild(t *testing.T, b *ContainerBuilder) *FlowElementContainer {
	container, err := b.Build()
	if err != nil {
		t.Fatalf("failed to build container: %v", err)
	}
	return container
}

func mustCreateBuilder(t *testing.T, customizers ...func(*Options)) *ContainerBuilder {
	b, err := NewContainerBuilder(customizers...)
	if err != nil {
		t.Fatalf("failed to create container builder: %v", err)
	}
	return b
}

func mustCreateProcess(t *testing.T, design *model.ProcessDefinition, customizers ...func(*Options)) *ProcessDefinition {
	process, err := New(design, customizers...)
	if err != nil {
		t.Fatalf("failed to create process definition: %v", err)
	}
	return process
}

func mustDecodeProcess(t *testing.T, fileName string) *model.ProcessDefinition {
	fileName = "../test/design/" + fileName

	processes, err := model.DecodeFile(fileName)
	if err != nil {
		t.Fatalf("failed to decode process: %v", err)
	}
	if len(processes) != 1 {
		t.Fatalf("expected file %s to contain one process, but got %d", fileName, len(processes))
	}
	return processes[0]
}

func newAutomaticTask(name string) *model.AutomaticTask {
	return &model.AutomaticTask{ActivityBase: model.ActivityBase{FlowNode: model.FlowNode{Name: name}}}
}

func newEndEvent(name string) model.EndEvent {
	return model.EndEvent{FlowNode: model.FlowNode{Name: name}}
}

func newGateway(name string, gatewayType model.GatewayType) model.Gateway {
	return model.Gateway{FlowNode: model.FlowNode{Name: name}, GatewayType: gatewayType}
}

func newStartEvent(name string) model.StartEvent {
	return model.StartEvent{FlowNode: model.FlowNode{Name: name}}
}

func newTransition(name string, source string, target string) model.Transition {
	return model.Transition{Name: name, Source: source, Target: target}
}

func newProcessDesign(flowElements model.FlowElementContainer) *model.ProcessDefinition {
	return &model.ProcessDefinition{
		Name:         "test",
		Version:      "1",
		FlowElements: flowElements,
	}
}

// unsupportedActivity is an activity, which is unknown to the builder.
type unsupportedActivity struct {
	model.ActivityBase
}

func (*unsupportedActivity) Type() model.FlowNodeType {
	return model.NodeAutomaticTask
}
