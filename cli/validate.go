package cli

import (
	"fmt"

	"github.com/gclaussn/go-bpmn-model/definition"
	"github.com/spf13/cobra"
)

func newValidateCmd(cli *Cli) *cobra.Command {
	var flags designFlags

	c := cobra.Command{
		Use:   "validate",
		Short: "Validate process designs",
		Long:  "Validate process designs. If a process is invalid, the causes are listed and the command fails.",
		RunE: func(c *cobra.Command, _ []string) error {
			designs, err := cli.decode(c, flags)
			if err != nil {
				return err
			}

			var invalid int
			for _, design := range designs {
				process, err := definition.New(design, cli.options())
				if err == nil {
					c.Printf("process %s is valid\n", process)
					continue
				}

				definitionErr, ok := err.(definition.Error)
				if !ok || definitionErr.Type == definition.ErrorBug {
					return err
				}

				invalid++

				c.Printf("%s: %s\n", definitionErr.Title, definitionErr.Detail)
				if len(definitionErr.Causes) == 0 {
					continue
				}

				table := newTable([]string{
					"POINTER",
					"TYPE",
					"DETAIL",
				})

				for _, cause := range definitionErr.Causes {
					table.addRow([]string{
						cause.Pointer,
						cause.Type,
						cause.Detail,
					})
				}

				c.Print(table.format())
			}

			if invalid != 0 {
				return fmt.Errorf("%d of %d process(es) are invalid", invalid, len(designs))
			}
			return nil
		},
	}

	flagDesign(&c, &flags)

	return &c
}
