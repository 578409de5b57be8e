package cli

import (
	"fmt"
	"os"

	"github.com/gclaussn/go-bpmn-model/definition"
	"github.com/gclaussn/go-bpmn-model/model"
	"github.com/spf13/cobra"
)

// designFlags locate the process designs, a command operates on.
type designFlags struct {
	file        string
	format      formatValue
	processName string
}

func flagDesign(c *cobra.Command, flags *designFlags) {
	c.Flags().StringVar(&flags.file, "file", "", "Design file (BPMN XML, JSON or YAML) or - to read from stdin")
	c.Flags().Var(&flags.format, "format", "Design format - overrides the file extension, required when reading from stdin")
	c.Flags().StringVar(&flags.processName, "process", "", "Name of the process, required if the file contains multiple processes")

	c.MarkFlagRequired("file")
}

// decode decodes the process designs, selected by the flags.
func (cli *Cli) decode(c *cobra.Command, flags designFlags) ([]*model.ProcessDefinition, error) {
	var (
		designs []*model.ProcessDefinition
		err     error
	)

	format := model.Format(flags.format)

	switch {
	case flags.file == "-":
		if format == 0 {
			return nil, fmt.Errorf("format is required, when reading from stdin")
		}
		designs, err = model.Decode(c.InOrStdin(), format)
	case format != 0:
		f, openErr := os.Open(flags.file)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open file %s: %v", flags.file, openErr)
		}

		defer f.Close()

		designs, err = model.Decode(f, format)
	default:
		designs, err = model.DecodeFile(flags.file)
	}

	if err != nil {
		return nil, err
	}

	cli.debugf("decoded %d process(es) from %s", len(designs), flags.file)

	if flags.processName == "" {
		return designs, nil
	}

	for _, design := range designs {
		if design.Name == flags.processName {
			return []*model.ProcessDefinition{design}, nil
		}
	}
	return nil, fmt.Errorf("file %s contains no process %s", flags.file, flags.processName)
}

// newProcess creates the process definition of the single process design, selected by the flags.
func (cli *Cli) newProcess(c *cobra.Command, flags designFlags) (*definition.ProcessDefinition, error) {
	designs, err := cli.decode(c, flags)
	if err != nil {
		return nil, err
	}

	switch len(designs) {
	case 0:
		return nil, fmt.Errorf("file %s contains no process", flags.file)
	case 1:
	default:
		return nil, fmt.Errorf("file %s contains %d processes, use --process to select one", flags.file, len(designs))
	}

	process, err := definition.New(designs[0], cli.options())
	if err != nil {
		return nil, err
	}

	cli.debugf("created process definition %s", process)
	return process, nil
}

// walkContainers visits a container and its nested containers depth-first.
// The pointer of a container is made up of the names of the process and the enclosing sub processes.
func walkContainers(pointer string, container *definition.FlowElementContainer, fn func(string, *definition.FlowElementContainer)) {
	fn(pointer, container)

	for _, nested := range container.SubProcessContainers() {
		walkContainers(pointer+"/"+nested.ElementContainer().Name(), nested, fn)
	}
}
