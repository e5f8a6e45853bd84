package main

import (
	"context"
	"flag"
	"io"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/jacoelho/xsdspace"
)

// typesCmd implements subcommands.Command for the "types" command.
type typesCmd struct {
	stdout io.Writer
}

// Name implements subcommands.Command.Name.
func (*typesCmd) Name() string { return "types" }

// Synopsis implements subcommands.Command.Synopsis.
func (*typesCmd) Synopsis() string { return "list the built-in datatypes" }

// Usage implements subcommands.Command.Usage.
func (*typesCmd) Usage() string {
	return `types
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*typesCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *typesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "NAME\tPRIMITIVE\tDISCRETE\tCARDINALITY"); err != nil {
		return subcommands.ExitFailure
	}
	for _, d := range xsdspace.Builtins() {
		cardinality := formatCount(d.Cardinality())
		if !d.Exact() {
			cardinality = "at most " + cardinality
		}
		if err := writef(w, "%s\t%s\t%t\t%s\n", d.Name(), d.Primitive().Name(), d.Space().Discrete(), cardinality); err != nil {
			return subcommands.ExitFailure
		}
	}
	if err := w.Flush(); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
