package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func execute(args []string, stdin string) (string, error) {
	rootCmd := newRootCmd(&Cli{version: "test"})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args []string) string {
	out, err := execute(args, "")
	if err != nil {
		t.Fatalf("failed to execute %v: %v", args, err)
	}
	return out
}

// lines returns the non-blank lines of a command output.
func lines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// findRow returns the whitespace separated fields of the first line, whose fields at index i and j match the given values.
func findRow(out string, i int, iValue string, j int, jValue string) []string {
	for _, line := range lines(out) {
		fields := strings.Fields(line)
		if len(fields) > i && len(fields) > j && fields[i] == iValue && fields[j] == jValue {
			return fields
		}
	}
	return nil
}
