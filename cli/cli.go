package cli

import (
	"log"
	"os"
	"strings"

	"github.com/gclaussn/go-bpmn-model/definition"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	envLookupAllowed = "envLookupAllowed" // flag level annotation that allows an environment variable lookup
	envPrefix        = "GO_BPMN_MODEL_"
	program          = "go-bpmn-model"
)

func New(version string) *Cli {
	cli := Cli{version: version}

	cli.rootCmd = newRootCmd(&cli)

	return &cli
}

type Cli struct {
	version string

	rootCmd *cobra.Command

	debugEnabled bool
	idOffset     int64
	strictMode   bool
}

func (c *Cli) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (c *Cli) help(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// options returns the customizers, used to create process definitions.
func (c *Cli) options() func(*definition.Options) {
	return func(o *definition.Options) {
		o.IdOffset = c.idOffset
		o.StrictMode = c.strictMode
	}
}

func (c *Cli) debugf(format string, v ...any) {
	if c.debugEnabled {
		log.Printf(format, v...)
	}
}

func newRootCmd(cli *Cli) *cobra.Command {
	c := cobra.Command{
		Use:   program,
		Short: "A tool for validating and inspecting BPMN process designs",
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			c.SilenceUsage = true

			c.Flags().VisitAll(func(f *pflag.Flag) {
				if f.Changed {
					return
				}
				if _, ok := f.Annotations[envLookupAllowed]; !ok {
					return
				}

				// e.g. id-offset -> GO_BPMN_MODEL_ID_OFFSET
				key := envPrefix + strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_")

				if value, ok := os.LookupEnv(key); ok {
					f.Value.Set(value)
				}
			})

			return nil
		},
		RunE: cli.help,
	}

	c.PersistentFlags().BoolVar(&cli.debugEnabled, "debug", false, "Log decoding and building steps")
	c.PersistentFlags().Int64Var(&cli.idOffset, "id-offset", 0, "Offset for generated flow node and transition IDs")
	c.PersistentFlags().BoolVar(&cli.strictMode, "strict", false, "Check the syntax of timer expressions and expressions, interpreted by expr")

	c.PersistentFlags().SetAnnotation("debug", envLookupAllowed, nil)
	c.PersistentFlags().SetAnnotation("id-offset", envLookupAllowed, nil)
	c.PersistentFlags().SetAnnotation("strict", envLookupAllowed, nil)

	c.AddCommand(newNodesCmd(cli))
	c.AddCommand(newTransitionsCmd(cli))
	c.AddCommand(newValidateCmd(cli))
	c.AddCommand(newVersionCmd(cli))

	return &c
}

func newVersionCmd(cli *Cli) *cobra.Command {
	c := cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(c *cobra.Command, _ []string) {
			c.Println(cli.version)
		},
	}

	return &c
}
