// pkg/style/styles_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test style rendering falls back to plain text off-terminal

package style_test

import (
	"testing"

	"github.com/arthur-debert/pathmaster/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestRenderOffTerminalIsPlain(t *testing.T) {
	// Test binaries never run with stdout on a tty, so Render must
	// hand the text back untouched.
	assert.Equal(t, "/usr/bin", style.Render(style.PathStyle, "/usr/bin"))
	assert.Equal(t, "ok", style.Render(style.SuccessStyle, "ok"))
}
