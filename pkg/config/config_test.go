// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Environment variables (PATHMASTER_*, XDG_*)
// PURPOSE: Test layered settings resolution

package config_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/pathmaster/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBackupDir(), settings.Backup.Dir)
	assert.Equal(t, 0, settings.Backup.HistoryLimit)
	assert.Empty(t, settings.Shell.ConfigFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PATHMASTER_BACKUP_DIR", "/tmp/pm-backups")
	t.Setenv("PATHMASTER_BACKUP_HISTORY_LIMIT", "5")
	t.Setenv("PATHMASTER_SHELL_CONFIG_FILE", "/tmp/rc")

	settings, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pm-backups", settings.Backup.Dir)
	assert.Equal(t, 5, settings.Backup.HistoryLimit)
	assert.Equal(t, "/tmp/rc", settings.Shell.ConfigFile)
}

func TestLoadExpandsBackupDir(t *testing.T) {
	t.Setenv("PM_TEST_ROOT", "/srv/data")
	t.Setenv("PATHMASTER_BACKUP_DIR", "$PM_TEST_ROOT/backups")

	settings, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/data/backups", settings.Backup.Dir)
}

func TestDefaultTOMLIsParseable(t *testing.T) {
	content := string(config.DefaultTOML())

	assert.True(t, strings.Contains(content, "[backup]"))
	assert.True(t, strings.Contains(content, "[shell]"))
}

func TestConfigFilePath(t *testing.T) {
	assert.True(t, strings.HasSuffix(config.ConfigFilePath(), "pathmaster/config.toml"))
}
