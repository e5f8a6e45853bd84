package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/xsdspace"
	"github.com/jacoelho/xsdspace/internal/config"
)

// evalCmd implements subcommands.Command for the "eval" command.
type evalCmd struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	asJSON     bool
}

// Name implements subcommands.Command.Name.
func (*evalCmd) Name() string { return "eval" }

// Synopsis implements subcommands.Command.Synopsis.
func (*evalCmd) Synopsis() string { return "evaluate a YAML batch of datatype queries" }

// Usage implements subcommands.Command.Usage.
func (*evalCmd) Usage() string {
	return `eval [-config file.toml] [-json] <queries.yaml>
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *evalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	f.BoolVar(&c.asJSON, "json", false, "print one JSON object per query")
}

// Execute implements subcommands.Command.Execute.
func (c *evalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fail(c.stderr, "%v", err)
	}
	log, err := cfg.Logger()
	if err != nil {
		return fail(c.stderr, "%v", err)
	}
	log.SetOutput(c.stderr)

	queries, err := loadQueries(f.Arg(0))
	if err != nil {
		return fail(c.stderr, "%v", err)
	}
	opts := xsdspace.NewOptions().
		WithLogger(log).
		WithMaxEnumeration(cfg.MaxEnumeration).
		WithWorkers(cfg.Workers)
	r, err := xsdspace.New(opts)
	if err != nil {
		return fail(c.stderr, "%v", err)
	}
	log.WithField("queries", len(queries)).Info("evaluating")
	results, err := r.EvaluateAll(ctx, queries)
	if err != nil {
		return fail(c.stderr, "%v", err)
	}

	status := subcommands.ExitSuccess
	enc := json.NewEncoder(c.stdout)
	for _, res := range results {
		if res.Err != nil {
			status = subcommands.ExitFailure
		}
		if c.asJSON {
			if err := enc.Encode(res); err != nil {
				return fail(c.stderr, "write result: %v", err)
			}
			continue
		}
		if err := writeln(c.stdout, formatResult(res)); err != nil {
			return subcommands.ExitFailure
		}
	}
	return status
}

func loadQueries(path string) ([]xsdspace.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read queries %q", path)
	}
	var queries []xsdspace.Query
	if err := yaml.Unmarshal(data, &queries); err != nil {
		return nil, errors.Wrapf(err, "decode queries %q", path)
	}
	return queries, nil
}

func formatResult(res xsdspace.Result) string {
	var b strings.Builder
	b.WriteString(res.Name)
	b.WriteString(": ")
	if res.Err != nil {
		b.WriteString("error: ")
		b.WriteString(res.Error)
		return b.String()
	}
	switch res.Op {
	case xsdspace.OpSatisfiable:
		switch {
		case res.Undecided:
			b.WriteString("satisfiable (assumed)")
		case res.Satisfiable:
			b.WriteString("satisfiable")
		default:
			b.WriteString("unsatisfiable")
		}
	case xsdspace.OpCardinality:
		if !res.Exact {
			b.WriteString("at most ")
		}
		b.WriteString(formatCardinality(res.Cardinality))
	case xsdspace.OpContains:
		if res.Contains {
			b.WriteString("contains")
		} else {
			b.WriteString("does not contain")
		}
	case xsdspace.OpEnumerate, xsdspace.OpNth:
		b.WriteString(strings.Join(res.Values, " "))
		if res.Truncated {
			b.WriteString(" ...")
		}
	}
	return b.String()
}
