package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// TestRunCommand_EndToEnd drives a tiny enumeration through the CLI and
// checks the artefacts it leaves behind.
func TestRunCommand_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "run", "-t", "1", "-s", "1", "-j", "2", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 levels")

	_, err = os.Stat(filepath.Join(dir, "1.dat"))
	assert.NoError(t, err, "per-T-count output file")
	_, err = os.Stat(filepath.Join(dir, summaryFile))
	assert.NoError(t, err, "run summary")
}

// TestRunCommand_ConfigFile: the YAML config supplies what flags do not.
func TestRunCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"target: 1\nstored_depth: 1\ndata_dir: "+dir+"\n",
	), 0o644))

	_, err := execute(t, "run", "-c", cfgPath)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "1.dat"))
	assert.NoError(t, err)
}

// TestReplayCommand prints the canonical form and case of a circuit.
func TestReplayCommand(t *testing.T) {
	out, err := execute(t, "replay", "0 9")
	require.NoError(t, err)
	assert.Contains(t, out, "circuit: 0 9")
	assert.Contains(t, out, "T-count: 2")
	assert.Contains(t, out, "case:")
}

// TestReplayCommand_BadCircuit surfaces replay errors.
func TestReplayCommand_BadCircuit(t *testing.T) {
	_, err := execute(t, "replay", "0 99")
	assert.Error(t, err)
}

// TestChartCommand renders the HTML report from a run summary.
func TestChartCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", "-t", "1", "-s", "1", "-o", dir)
	require.NoError(t, err)

	htmlPath := filepath.Join(dir, "report.html")
	_, err = execute(t, "chart", "-o", dir, "--out", htmlPath)
	require.NoError(t, err)

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "echarts"), "page embeds echarts")
}

// TestChartCommand_MissingSummary fails with a pointer to run.
func TestChartCommand_MissingSummary(t *testing.T) {
	_, err := execute(t, "chart", "-o", t.TempDir())
	assert.Error(t, err)
}
