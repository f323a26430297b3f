package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hull/internal/cli"
	"github.com/katalvlaran/hull/internal/workload"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const scenario = `variant: dynamic
numeric: int
lines: [[2, 0], [0, 5], [-1, 10]]
queries: [0, 3, 10]
`

func TestEval_Text(t *testing.T) {
	out, _, err := execute(t, "eval", writeFile(t, scenario))
	require.NoError(t, err)
	assert.Equal(t, "x=0 max=10\nx=3 max=7\nx=10 max=20\ndynamic/int: 3 lines, 2 retained, 3 queries\n", out)
}

func TestEval_JSONAndVerboseLogs(t *testing.T) {
	out, logs, err := execute(t, "--format", "json", "-v", "eval", writeFile(t, scenario))
	require.NoError(t, err)

	var res workload.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Retained)
	assert.Equal(t, "20", res.Answers[2].Max)
	assert.Contains(t, logs, "dropped dominated line")
	assert.Contains(t, logs, "workload evaluated")
}

func TestEval_Errors(t *testing.T) {
	_, _, err := execute(t, "eval", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, int(cli.ExitBadInput), cli.ExitCodeOf(err))

	_, _, err = execute(t, "eval", writeFile(t, strings.Replace(scenario, "dynamic", "treap", 1)))
	assert.ErrorIs(t, err, workload.ErrUnknownVariant)

	_, _, err = execute(t, "--format", "xml", "eval", writeFile(t, scenario))
	require.Error(t, err)
	assert.Equal(t, int(cli.ExitBadInput), cli.ExitCodeOf(err))
}

func TestGenThenCheck(t *testing.T) {
	for _, args := range [][]string{
		{"gen", "--kind", "random", "-n", "50", "-q", "40", "--seed", "9"},
		{"gen", "--kind", "tangent", "-n", "30", "--variant", "monotonic", "--strict"},
		{"gen", "--kind", "parallel", "-n", "10", "--numeric", "float", "--variant", "static"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			doc, _, err := execute(t, args...)
			require.NoError(t, err)

			path := writeFile(t, doc)
			out, _, err := execute(t, "check", path)
			require.NoError(t, err)
			assert.Contains(t, out, "ok:")

			_, _, err = execute(t, "eval", path)
			assert.NoError(t, err, "generated workloads evaluate in file order")
		})
	}
}

func TestGen_Errors(t *testing.T) {
	_, _, err := execute(t, "gen", "--kind", "zigzag")
	assert.Equal(t, int(cli.ExitBadInput), cli.ExitCodeOf(err))

	_, _, err = execute(t, "gen", "--numeric", "complex")
	assert.ErrorIs(t, err, workload.ErrUnknownNumeric)

	_, _, err = execute(t, "gen", "--variant", "heap")
	assert.ErrorIs(t, err, workload.ErrUnknownVariant)

	_, _, err = execute(t, "gen", "-n", "0")
	assert.Error(t, err)
}

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want cli.ExitCode
	}{
		{"mismatch", fmt.Errorf("x=3: %w", workload.ErrMismatch), cli.ExitMismatch},
		{"untagged", errors.New(`unknown flag: --bogus`), cli.ExitBadInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, int(tc.want), cli.ExitCodeOf(tc.err))
		})
	}
}
