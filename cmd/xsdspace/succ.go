package main

import (
	"context"
	"flag"
	"io"
	"strconv"

	"github.com/google/subcommands"

	"github.com/jacoelho/xsdspace"
)

// succCmd implements subcommands.Command for the "succ" command.
type succCmd struct {
	stdout io.Writer
	stderr io.Writer
}

// Name implements subcommands.Command.Name.
func (*succCmd) Name() string { return "succ" }

// Synopsis implements subcommands.Command.Synopsis.
func (*succCmd) Synopsis() string { return "print the n-th successor of a literal" }

// Usage implements subcommands.Command.Usage.
func (*succCmd) Usage() string {
	return `succ <datatype> <literal> <n>
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*succCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *succCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	n, err := strconv.ParseInt(f.Arg(2), 10, 64)
	if err != nil {
		return fail(c.stderr, "invalid step %q", f.Arg(2))
	}
	v, err := xsdspace.Successor(f.Arg(0), f.Arg(1), n)
	if err != nil {
		return fail(c.stderr, "%v", err)
	}
	if err := writeln(c.stdout, v); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// countCmd implements subcommands.Command for the "count" command.
type countCmd struct {
	stdout io.Writer
	stderr io.Writer
}

// Name implements subcommands.Command.Name.
func (*countCmd) Name() string { return "count" }

// Synopsis implements subcommands.Command.Synopsis.
func (*countCmd) Synopsis() string { return "count the members between two literals" }

// Usage implements subcommands.Command.Usage.
func (*countCmd) Usage() string {
	return `count <datatype> <from> <to>
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*countCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *countCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	n, err := xsdspace.CountBetween(f.Arg(0), f.Arg(1), f.Arg(2))
	if err != nil {
		return fail(c.stderr, "%v", err)
	}
	if err := writeln(c.stdout, formatCount(n)); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
