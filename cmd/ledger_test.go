package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLedgerFile(t *testing.T, root string) {
	t.Helper()

	ledger := `{"iterations": {
		"art/Hull.bp": {"name": "Hull", "path": "art/Hull.bp", "iteration": 4},
		"art/Wing.bp": {"name": "Wing", "path": "art/Wing.bp", "iteration": 2}
	}}`
	require.NoError(t, os.WriteFile(filepath.Join(root, "iteration.json"), []byte(ledger), 0o644))
}

func TestLedgerCmd_Table(t *testing.T) {
	root := t.TempDir()
	seedLedgerFile(t, root)

	output, err := runCommand(t, warehouseArgs(root, "ledger")...)
	require.NoError(t, err)

	assert.Contains(t, output, "art/Hull.bp")
	assert.Contains(t, output, "art/Wing.bp")
	assert.Contains(t, output, "4")
}

func TestLedgerCmd_YAML(t *testing.T) {
	root := t.TempDir()
	seedLedgerFile(t, root)

	output, err := runCommand(t, warehouseArgs(root, "ledger", "--format", "yaml")...)
	require.NoError(t, err)

	assert.Contains(t, output, "iterations:")
	assert.Contains(t, output, "art/Hull.bp")
	assert.Contains(t, output, "iteration: 4")
}

func TestLedgerCmd_UnknownFormat(t *testing.T) {
	root := t.TempDir()
	seedLedgerFile(t, root)

	_, err := runCommand(t, warehouseArgs(root, "ledger", "--format", "csv")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestLedgerCmd_MissingLedger(t *testing.T) {
	root := t.TempDir()

	_, err := runCommand(t, warehouseArgs(root, "ledger")...)
	require.Error(t, err)
}
