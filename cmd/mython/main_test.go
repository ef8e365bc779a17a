package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmdExecutesSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.my")
	require.NoError(t, os.WriteFile(path, []byte("print 1 + 2\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "3\n", out.String())
}

func TestVersionCmdPrintsVersion(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}

func TestTokensCmdPrintsTokenStream(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.my")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tokens", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Eof")
}

func TestRunCmdWritesLogDirJSONLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.my")
	require.NoError(t, os.WriteFile(path, []byte("print 1\n"), 0o644))
	logDir := t.TempDir()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "--log-dir", logDir, path})
	require.NoError(t, cmd.Execute())

	logBytes, err := os.ReadFile(filepath.Join(logDir, "mython.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logBytes), "run complete")
}

func TestRunCmdReportsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.my")
	require.NoError(t, os.WriteFile(path, []byte("if 1\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", path})
	assert.Error(t, cmd.Execute())
}
