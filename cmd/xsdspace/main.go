// Command xsdspace answers XML Schema datatype questions: emptiness and
// cardinality of facet restrictions, successors and counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"

	"github.com/jacoelho/xsdspace"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xsdspace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}

	cdr := subcommands.NewCommander(fs, "xsdspace")
	cdr.Output = stdout
	cdr.Error = stderr
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&evalCmd{stdout: stdout, stderr: stderr}, "")
	cdr.Register(&succCmd{stdout: stdout, stderr: stderr}, "")
	cdr.Register(&countCmd{stdout: stdout, stderr: stderr}, "")
	cdr.Register(&typesCmd{stdout: stdout}, "")

	return int(cdr.Execute(context.Background()))
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

// fail reports err on w and returns the failure status.
func fail(w io.Writer, format string, args ...any) subcommands.ExitStatus {
	_ = writef(w, "error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// formatCount renders a cardinality with thousands separators.
func formatCount(c xsdspace.Count) string {
	if c.IsInfinite() {
		return c.String()
	}
	return humanize.BigComma(c.Int())
}

// formatCardinality renders a Result cardinality with thousands separators.
func formatCardinality(s string) string {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return s
	}
	return humanize.BigComma(n)
}
