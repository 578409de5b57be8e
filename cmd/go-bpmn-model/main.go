/*
go-bpmn-model is a CLI for validating and inspecting BPMN process designs.

A design is read from a BPMN XML, JSON or YAML file. The format is derived from the file extension, unless --format is specified.

Usage:

	go-bpmn-model [flags]
	go-bpmn-model [command]

Available Commands:

	completion  Generate the autocompletion script for the specified shell
	help        Help about any command
	nodes       List the flow nodes of a process
	transitions List the transitions of a process
	validate    Validate process designs
	version     Show version

Flags:

	    --debug           Log decoding and building steps
	-h, --help            help for go-bpmn-model
	    --id-offset int   Offset for generated flow node and transition IDs
	    --strict          Check the syntax of timer expressions and expressions, interpreted by expr

Each flag can also be set via an environment variable, prefixed with GO_BPMN_MODEL_ - e.g. GO_BPMN_MODEL_STRICT=true.

Use "go-bpmn-model [command] --help" for more information about a command.
*/
package main

import (
	"os"

	"github.com/gclaussn/go-bpmn-model/cli"
)

var (
	version = "unknown-version"
)

func main() {
	cli := cli.New(version)
	os.Exit(cli.Execute())
}
