package cli

import (
	"strconv"

	"github.com/gclaussn/go-bpmn-model/definition"
	"github.com/spf13/cobra"
)

func newTransitionsCmd(cli *Cli) *cobra.Command {
	var flags designFlags

	c := cobra.Command{
		Use:   "transitions",
		Short: "List the transitions of a process",
		RunE: func(c *cobra.Command, _ []string) error {
			process, err := cli.newProcess(c, flags)
			if err != nil {
				return err
			}

			table := newTable([]string{
				"ID",
				"CONTAINER",
				"NAME",
				"SOURCE",
				"TARGET",
				"CONDITION",
			})

			walkContainers("/"+process.Name(), process.Container(), func(pointer string, container *definition.FlowElementContainer) {
				for _, transition := range container.Transitions() {
					table.addRow([]string{
						strconv.FormatInt(transition.Id(), 10),
						pointer,
						transition.Name(),
						container.Source(transition).Name(),
						container.Target(transition).Name(),
						formatExpression(transition.Condition()),
					})
				}
			})

			c.Print(table.format())
			return nil
		},
	}

	flagDesign(&c, &flags)

	return &c
}
