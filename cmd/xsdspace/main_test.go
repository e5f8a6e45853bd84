package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const queriesYAML = `
- name: days
  datatype: gDay
  op: cardinality
  facets:
    - kind: minInclusive
      value: "---05"
    - kind: maxInclusive
      value: "---15"
- name: empty
  datatype: gDay
  op: satisfiable
  facets:
    - kind: minInclusive
      value: "---05"
    - kind: maxExclusive
      value: "---05"
- name: teens
  datatype: byte
  op: enumerate
  limit: 3
  facets:
    - kind: pattern
      value: '1\d'
`

func TestEval(t *testing.T) {
	queries := writeFile(t, "queries.yaml", queriesYAML)

	code, stdout, stderr := runCLI(t, "eval", queries)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "days: 11\nempty: unsatisfiable\nteens: 10 11 12 ...\n", stdout)
}

func TestEvalJSON(t *testing.T) {
	queries := writeFile(t, "queries.yaml", queriesYAML)

	code, stdout, stderr := runCLI(t, "eval", "-json", queries)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	var first struct {
		Name        string `json:"name"`
		Cardinality string `json:"cardinality"`
		Exact       bool   `json:"exact"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "days", first.Name)
	require.Equal(t, "11", first.Cardinality)
	require.True(t, first.Exact)
}

func TestEvalFailedQuery(t *testing.T) {
	queries := writeFile(t, "queries.yaml", `
- name: bad
  datatype: string
  op: satisfiable
  facets:
    - kind: minInclusive
      value: a
`)
	code, stdout, _ := runCLI(t, "eval", queries)
	require.Equal(t, 1, code)
	require.True(t, strings.HasPrefix(stdout, "bad: error: "), stdout)
}

func TestEvalConfig(t *testing.T) {
	queries := writeFile(t, "queries.yaml", queriesYAML)
	cfg := writeFile(t, "config.toml", "log_level = \"nope\"\n")

	code, _, stderr := runCLI(t, "eval", "-config", cfg, queries)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "log_level")
}

func TestEvalMissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "eval", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "read queries")
}

func TestSucc(t *testing.T) {
	code, stdout, stderr := runCLI(t, "succ", "gDay", "---05", "3")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "---08\n", stdout)

	code, _, stderr = runCLI(t, "succ", "byte", "127", "1")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "error:")

	code, _, _ = runCLI(t, "succ", "byte", "127", "x")
	require.Equal(t, 1, code)
}

func TestCount(t *testing.T) {
	code, stdout, stderr := runCLI(t, "count", "unsignedInt", "0", "4294967295")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "4,294,967,296\n", stdout)

	code, stdout, _ = runCLI(t, "count", "decimal", "0", "1")
	require.Equal(t, 0, code)
	require.Equal(t, "infinite\n", stdout)
}

func TestTypes(t *testing.T) {
	code, stdout, stderr := runCLI(t, "types")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "NAME")
	require.Regexp(t, `(?m)^unsignedByte\s+integer\s+true\s+256$`, stdout)
	require.Regexp(t, `(?m)^boolean\s+boolean\s+true\s+2$`, stdout)
}

func TestUsage(t *testing.T) {
	code, _, _ := runCLI(t, "succ", "gDay")
	require.Equal(t, 2, code)

	code, _, _ = runCLI(t, "no-such-command")
	require.Equal(t, 2, code)
}

func TestEvalAssumedSatisfiable(t *testing.T) {
	queries := writeFile(t, "queries.yaml", `
- name: ints
  datatype: int
  op: satisfiable
  facets:
    - kind: pattern
      value: x
`)
	code, stdout, stderr := runCLI(t, "eval", queries)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "ints: satisfiable (assumed)\n", stdout)
}
