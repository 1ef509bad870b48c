// pkg/pathenv/pathenv_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables (PATH, HOME)
// PURPOSE: Test PATH expansion, session read/write, and validation

package pathenv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathmaster/pkg/pathenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("PM_TEST_DIR", "/opt/tools")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde_only", "~", home},
		{"tilde_prefix", "~/bin", filepath.Join(home, "bin")},
		{"env_reference", "$PM_TEST_DIR/bin", "/opt/tools/bin"},
		{"absolute_unchanged", "/usr/local/bin", "/usr/local/bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathenv.Expand(tt.in))
		})
	}
}

func TestEntriesAndSet(t *testing.T) {
	t.Setenv("PATH", "/usr/bin"+string(os.PathListSeparator)+"/usr/local/bin")

	entries := pathenv.Entries()
	assert.Equal(t, []string{"/usr/bin", "/usr/local/bin"}, entries)

	require.NoError(t, pathenv.Set([]string{"/opt/bin"}))
	assert.Equal(t, []string{"/opt/bin"}, pathenv.Entries())
}

func TestEntriesEmptyPath(t *testing.T) {
	t.Setenv("PATH", "")
	assert.Empty(t, pathenv.Entries())
}

func TestDedupe(t *testing.T) {
	in := []string{"/usr/bin", "/opt/bin", "/usr/bin", "/opt/bin", "/sbin"}
	assert.Equal(t, []string{"/usr/bin", "/opt/bin", "/sbin"}, pathenv.Dedupe(in))
}

func TestValidate(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "does-not-exist")

	v := pathenv.Validate([]string{existing, missing})

	assert.Equal(t, []string{existing}, v.Existing)
	assert.Equal(t, []string{missing}, v.Missing)
}

func TestIsValidEntryRejectsFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain-file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, pathenv.IsValidEntry(dir))
	assert.False(t, pathenv.IsValidEntry(file))
}
