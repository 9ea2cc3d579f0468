package commands

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// A pinned anchor keeps every golden file stable: Saturday afternoon,
// 2025-03-15 14:30:45 UTC.
const testAnchor = "2025-03-15T14:30:45Z"

func runEval(t *testing.T, args ...string) []byte {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"eval", "--at", testAnchor, "--tz", "UTC"}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.Bytes()
}

func TestEvalPlain(t *testing.T) {
	got := runEval(t, "now-1d/d", "now/d")

	g := goldie.New(t)
	g.Assert(t, "eval-plain", got)
}

func TestEvalUnix(t *testing.T) {
	got := runEval(t, "--format", "unix", "now-1d/d", "now/d")

	g := goldie.New(t)
	g.Assert(t, "eval-unix", got)
}

func TestEvalJSON(t *testing.T) {
	got := runEval(t, "--format", "json", "now-1d/d", "now/d")

	g := goldie.New(t)
	g.Assert(t, "eval-json", got)
}

func TestEvalPreset(t *testing.T) {
	got := runEval(t, "--format", "plain", "yesterday")

	g := goldie.New(t)
	g.Assert(t, "eval-preset", got)
}

func TestEvalBadExpression(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"eval", "--at", testAnchor, "--tz", "UTC", "1h-ago"})

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "1h-ago")
}

func TestEvalUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"eval", "--at", testAnchor, "--format", "xml", "now"})

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "xml")
}

func TestRangeCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"range", "--at", testAnchor, "--tz", "UTC", "now-7d/d", "now/d"})
	require.NoError(t, rootCmd.Execute())

	g := goldie.New(t)
	g.Assert(t, "range-plain", out.Bytes())
}

func TestRangeInverted(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"range", "--at", testAnchor, "--tz", "UTC", "now", "now-1d"})

	require.Error(t, rootCmd.Execute())
}

func TestWriteResultsYAML(t *testing.T) {
	results := []evalResult{
		{Expression: "now-1d/d", Resolved: "2025-03-14T00:00:00Z", Unix: 1741910400},
		{Expression: "now/d", Resolved: "2025-03-15T00:00:00Z", Unix: 1741996800},
	}

	var out bytes.Buffer
	require.NoError(t, writeResults(&out, "yaml", results))

	g := goldie.New(t)
	g.Assert(t, "eval-yaml", out.Bytes())
}
