package cli

import (
	"strconv"

	"github.com/gclaussn/go-bpmn-model/definition"
	"github.com/gclaussn/go-bpmn-model/model"
	"github.com/spf13/cobra"
)

func newNodesCmd(cli *Cli) *cobra.Command {
	var (
		flags        designFlags
		flowNodeType flowNodeTypeValue
	)

	c := cobra.Command{
		Use:   "nodes",
		Short: "List the flow nodes of a process",
		RunE: func(c *cobra.Command, _ []string) error {
			process, err := cli.newProcess(c, flags)
			if err != nil {
				return err
			}

			table := newTable([]string{
				"ID",
				"CONTAINER",
				"NAME",
				"TYPE",
				"INCOMING",
				"OUTGOING",
				"DEFAULT",
			})

			walkContainers("/"+process.Name(), process.Container(), func(pointer string, container *definition.FlowElementContainer) {
				for _, flowNode := range container.FlowNodes() {
					if flowNodeType != 0 && flowNode.Type() != model.FlowNodeType(flowNodeType) {
						continue
					}

					var defaultTransition string
					if t := flowNode.DefaultTransition(); t != nil {
						defaultTransition = t.Name()
					}

					table.addRow([]string{
						strconv.FormatInt(flowNode.Id(), 10),
						pointer,
						flowNode.Name(),
						flowNode.Type().String(),
						formatTransitions(flowNode.Incoming()),
						formatTransitions(flowNode.Outgoing()),
						defaultTransition,
					})
				}
			})

			c.Print(table.format())
			return nil
		},
	}

	flagDesign(&c, &flags)

	c.Flags().Var(&flowNodeType, "type", "Flow node type filter - e.g. USER_TASK")

	return &c
}
