package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/logging"
)

const backupTimestampLayout = "20060102150405"

// Updater persists PATH entries into one shell startup file. It backs
// up the file, runs Rewrite on the content, and writes the result. All
// collaborators are explicit; there is no package-level state.
type Updater struct {
	handler    Handler
	configPath string
	now        func() time.Time
}

// UpdaterOption customizes an Updater.
type UpdaterOption func(*Updater)

// WithConfigPath overrides the handler's default config file location.
func WithConfigPath(path string) UpdaterOption {
	return func(u *Updater) {
		if path != "" {
			u.configPath = path
		}
	}
}

// WithClock overrides the time source used for backup names.
func WithClock(now func() time.Time) UpdaterOption {
	return func(u *Updater) {
		u.now = now
	}
}

// NewUpdater creates an Updater for the given shell handler.
func NewUpdater(h Handler, opts ...UpdaterOption) *Updater {
	u := &Updater{
		handler:    h,
		configPath: h.ConfigPath(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ConfigPath returns the startup file this Updater edits.
func (u *Updater) ConfigPath() string {
	return u.configPath
}

// Update rewrites the config file so its PATH declaration matches
// entries. A missing file is a valid starting state: no backup is
// taken and the declaration is written into a fresh file. Backup
// failure is logged but does not abort the rewrite.
func (u *Updater) Update(entries []string) error {
	logger := logging.GetLogger("shell.updater")

	backupPath, err := u.backup()
	if err != nil {
		logger.Warn().Err(err).Str("config", u.configPath).Msg("Could not back up shell config, continuing without one")
	} else if backupPath != "" {
		logger.Info().Str("backup", backupPath).Msg("Created shell config backup")
	}

	content, err := u.read()
	if err != nil {
		return err
	}

	updated := Rewrite(content, entries, u.handler)

	if err := os.MkdirAll(filepath.Dir(u.configPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating directory for %s", u.configPath)
	}
	if err := os.WriteFile(u.configPath, []byte(updated), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "writing %s", u.configPath)
	}

	logger.Debug().
		Str("config", u.configPath).
		Str("shell", string(u.handler.Type())).
		Int("entries", len(entries)).
		Msg("Shell config updated")
	return nil
}

func (u *Updater) read() (string, error) {
	data, err := os.ReadFile(u.configPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigRead, "reading %s", u.configPath)
	}
	return string(data), nil
}

// backup copies the config file to a timestamped sibling. The name
// embeds a 14-digit timestamp; a monotonic counter suffix keeps rapid
// successive backups from colliding. A missing source file means no
// backup and no error.
func (u *Updater) backup() (string, error) {
	data, err := os.ReadFile(u.configPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigBackup, "reading %s for backup", u.configPath)
	}

	stamp := u.now().Format(backupTimestampLayout)
	backupPath := fmt.Sprintf("%s.bak_%s", u.configPath, stamp)
	for n := 1; ; n++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = fmt.Sprintf("%s.bak_%s_%d", u.configPath, stamp, n)
	}

	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigBackup, "writing backup of %s", u.configPath)
	}
	return backupPath, nil
}
