package cmd

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"randgen/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute resets the flag state to its defaults and runs the root command
// with the given arguments, capturing stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flags = Flags{
		Kind:  "int",
		Min:   0,
		Max:   100,
		Count: 1,
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func outputLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestDefaultInvocation(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)

	v, err := strconv.Atoi(lines[0])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0)
	assert.LessOrEqual(t, v, 100)
}

func TestGenerateInts(t *testing.T) {
	out, err := execute(t, "--kind", "int", "--count", "5", "--min", "10", "--max", "20")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 5)
	for _, line := range lines {
		v, err := strconv.Atoi(line)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 20)
	}
}

func TestGenerateFloats(t *testing.T) {
	out, err := execute(t, "--kind", "float", "--count", "3", "--min", "1.5", "--max", "2.5")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 3)
	for _, line := range lines {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1.5)
		assert.Less(t, v, 2.5)
	}
}

func TestInvalidCount(t *testing.T) {
	out, err := execute(t, "--count=-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, random.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "count must be a positive integer")
	assert.Empty(t, out)
}

func TestInvalidRange(t *testing.T) {
	out, err := execute(t, "--min", "10", "--max", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_value must be <= max_value")
	assert.Empty(t, out)
}

func TestInvalidKind(t *testing.T) {
	out, err := execute(t, "--kind", "string", "--count", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind must be either 'int' or 'float'")
	assert.Empty(t, out)
}

func TestExamples(t *testing.T) {
	out, err := execute(t, "--examples")
	require.NoError(t, err)

	assert.Contains(t, out, "Examples:")
	assert.Contains(t, out, "Single int [1, 10]:")
	assert.Contains(t, out, "Single float [0.0, 1.0]:")
	assert.Contains(t, out, "Five ints [10, 20]:")
	assert.Contains(t, out, "Five floats [1.5, 2.5]:")
}

func TestExamplesIgnoresOtherFlags(t *testing.T) {
	out, err := execute(t, "--examples", "--count", "-5", "--kind", "string")
	require.NoError(t, err)
	assert.Contains(t, out, "Examples:")
}
