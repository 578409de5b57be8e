package model

import (
	"testing"
)

func mustDecodeBpmn(t *testing.T, fileName string) []*ProcessDefinition {
	fileName = "../test/bpmn/" + fileName

	processes, err := DecodeFile(fileName)
	if err != nil {
		t.Fatalf("failed to decode BPMN XML: %v", err)
	}

	return processes
}

func mustDecodeDesign(t *testing.T, fileName string) *ProcessDefinition {
	fileName = "../test/design/" + fileName

	processes, err := DecodeFile(fileName)
	if err != nil {
		t.Fatalf("failed to decode design: %v", err)
	}
	if len(processes) != 1 {
		t.Fatalf("expected file %s to contain one process, but got %d", fileName, len(processes))
	}

	return processes[0]
}
