// cmd/pathmaster/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Filesystem (t.TempDir), environment variables
// PURPOSE: Test the CLI commands end to end against temp configs

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/pathmaster/pkg/backup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with args and captures its output.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// setupEnv points every external collaborator at temp locations and
// returns the shell config path. PATH starts with one valid directory.
func setupEnv(t *testing.T) (configFile, pathDir string) {
	t.Helper()
	pathDir = t.TempDir()
	configFile = filepath.Join(t.TempDir(), ".bashrc")

	t.Setenv("SHELL", "/bin/bash")
	t.Setenv("PATH", pathDir)
	t.Setenv("PATHMASTER_BACKUP_DIR", filepath.Join(t.TempDir(), "backups"))
	t.Setenv("PATHMASTER_SHELL_CONFIG_FILE", configFile)
	return configFile, pathDir
}

func TestListCommand(t *testing.T) {
	setupEnv(t)
	dirA := t.TempDir()
	dirB := t.TempDir()
	t.Setenv("PATH", dirA+string(os.PathListSeparator)+dirB)

	out, _, err := runCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, MsgListHeader)
	assert.Contains(t, out, dirA)
	assert.Contains(t, out, dirB)
}

func TestAddCommand(t *testing.T) {
	configFile, pathDir := setupEnv(t)
	newDir := t.TempDir()

	out, _, err := runCommand(t, "add", newDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Added 1 directory")
	assert.Contains(t, os.Getenv("PATH"), newDir)

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), pathDir+":"+newDir)

	// A PATH snapshot was taken before the mutation.
	snapshots, err := backup.NewStore(os.Getenv("PATHMASTER_BACKUP_DIR")).List()
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, pathDir, snapshots[0].Path)
}

func TestAddDuplicateIsNoop(t *testing.T) {
	configFile, pathDir := setupEnv(t)

	out, _, err := runCommand(t, "add", pathDir)
	require.NoError(t, err)

	assert.Contains(t, out, MsgNothingToAdd)
	assert.NoFileExists(t, configFile)
}

func TestAddWarnsOnMissingDirectory(t *testing.T) {
	setupEnv(t)
	missing := filepath.Join(t.TempDir(), "not-there")

	out, errOut, err := runCommand(t, "add", missing)
	require.NoError(t, err)

	assert.Contains(t, errOut, "does not exist")
	assert.Contains(t, out, "Added 1 directory")
}

func TestDeleteCommand(t *testing.T) {
	configFile, pathDir := setupEnv(t)
	doomed := t.TempDir()
	t.Setenv("PATH", pathDir+string(os.PathListSeparator)+doomed)

	out, _, err := runCommand(t, "delete", doomed)
	require.NoError(t, err)

	assert.Contains(t, out, "Removed 1 directory")
	assert.NotContains(t, os.Getenv("PATH"), doomed)

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), doomed)
	assert.Contains(t, string(content), pathDir)
}

func TestDeleteUnknownDirectory(t *testing.T) {
	setupEnv(t)

	out, _, err := runCommand(t, "delete", "/no/such/entry")
	require.NoError(t, err)
	assert.Contains(t, out, MsgNoneDeleted)
}

func TestCheckCommandAllValid(t *testing.T) {
	setupEnv(t)

	out, _, err := runCommand(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, MsgAllValid)
}

func TestCheckCommandReportsMissing(t *testing.T) {
	_, pathDir := setupEnv(t)
	missing := filepath.Join(pathDir, "vanished")
	t.Setenv("PATH", pathDir+string(os.PathListSeparator)+missing)

	out, _, err := runCommand(t, "check")
	require.NoError(t, err)

	assert.Contains(t, out, MsgInvalidHeader)
	assert.Contains(t, out, missing)
}

func TestFlushCommand(t *testing.T) {
	configFile, pathDir := setupEnv(t)
	missing := filepath.Join(pathDir, "vanished")
	t.Setenv("PATH", pathDir+string(os.PathListSeparator)+missing)

	out, _, err := runCommand(t, "flush")
	require.NoError(t, err)

	assert.Contains(t, out, "Removed 1 invalid path")
	assert.NotContains(t, os.Getenv("PATH"), missing)

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), missing)
}

func TestFlushNothingToDo(t *testing.T) {
	setupEnv(t)

	out, _, err := runCommand(t, "flush")
	require.NoError(t, err)
	assert.Contains(t, out, MsgNoInvalidPaths)
}

func TestHistoryEmpty(t *testing.T) {
	setupEnv(t)

	out, _, err := runCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, MsgNoBackups)
}

func TestHistoryListsSnapshots(t *testing.T) {
	setupEnv(t)
	store := backup.NewStore(os.Getenv("PATHMASTER_BACKUP_DIR"),
		backup.WithClock(func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
		}))
	_, err := store.Create("/usr/bin:/usr/local/bin")
	require.NoError(t, err)

	out, _, err := runCommand(t, "history")
	require.NoError(t, err)

	assert.Contains(t, out, "20240315103000")
	assert.Contains(t, out, "2024-03-15 10:30:00")
	assert.Contains(t, out, "2")
}

func TestRestoreLatest(t *testing.T) {
	configFile, _ := setupEnv(t)
	restored := t.TempDir()

	store := backup.NewStore(os.Getenv("PATHMASTER_BACKUP_DIR"))
	_, err := store.Create(restored)
	require.NoError(t, err)

	out, _, err := runCommand(t, "restore")
	require.NoError(t, err)

	assert.Contains(t, out, "Restored PATH from backup")
	assert.Equal(t, restored, os.Getenv("PATH"))

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), restored)
}

func TestRestoreByTimestamp(t *testing.T) {
	setupEnv(t)
	store := backup.NewStore(os.Getenv("PATHMASTER_BACKUP_DIR"),
		backup.WithClock(func() time.Time {
			return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
		}))
	_, err := store.Create("/from/snapshot")
	require.NoError(t, err)

	out, _, err := runCommand(t, "restore", "--timestamp", "20240102030405")
	require.NoError(t, err)
	assert.Contains(t, out, "20240102030405")
	assert.Equal(t, "/from/snapshot", os.Getenv("PATH"))
}

func TestRestoreUnknownTimestamp(t *testing.T) {
	setupEnv(t)

	_, _, err := runCommand(t, "restore", "--timestamp", "19990101000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "19990101000000")
}

func TestGenConfig(t *testing.T) {
	setupEnv(t)

	out, _, err := runCommand(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[backup]")
	assert.Contains(t, out, "[shell]")
}

func TestGenConfigEffective(t *testing.T) {
	setupEnv(t)
	t.Setenv("PATHMASTER_BACKUP_HISTORY_LIMIT", "7")

	out, _, err := runCommand(t, "genconfig", "--effective")
	require.NoError(t, err)
	assert.Contains(t, out, "history_limit = 7")
	assert.True(t, strings.Contains(out, "[backup]"))
}
