package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A powerful PATH management tool"
	MsgAddShort       = "Add directories to the PATH"
	MsgDeleteShort    = "Delete directories from the PATH"
	MsgListShort      = "List current PATH entries"
	MsgCheckShort     = "Check PATH for invalid directories"
	MsgFlushShort     = "Flush non-existing paths from the PATH"
	MsgHistoryShort   = "Show PATH backup history"
	MsgRestoreShort   = "Restore PATH from a backup"
	MsgGenConfigShort = "Print the pathmaster configuration"
	MsgVersionShort   = "Print version information"
	MsgManShort       = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTimestamp = "Timestamp of the backup to restore (default: latest)"
	MsgFlagEffective = "Print the resolved configuration instead of the template"
	MsgFlagManDir    = "Directory to write man pages into"

	// Status messages
	MsgListHeader       = "Current PATH entries:"
	MsgAllValid         = "All directories in PATH are valid"
	MsgInvalidHeader    = "Invalid directories in PATH:"
	MsgNoInvalidPaths   = "No invalid paths were found in your PATH."
	MsgNoneDeleted      = "None of the directories were found in PATH."
	MsgNothingToAdd     = "All of the directories are already in PATH."
	MsgNoBackups        = "No PATH backups found."
	MsgSessionOnly      = "PATH was updated for this session only; the shell config could not be written."
	MsgNothingChanged   = "Nothing was changed."
	MsgAddedFormat      = "Added %d director%s to your PATH.\n"
	MsgDeletedFormat    = "Removed %d director%s from your PATH.\n"
	MsgFlushedFormat    = "Removed %d invalid path(s) from your PATH.\n"
	MsgRestoredFormat   = "Restored PATH from backup %s.\n"
	MsgConfigSavedTo    = "Shell config updated: %s\n"
	MsgMissingDirFormat = "Warning: %s does not exist\n"
)

// Long messages
const (
	MsgRootLong = `pathmaster manages your system's PATH environment variable: adding,
removing, listing, and validating entries, with timestamped backups and
persistence into your shell's startup file (bash, zsh, fish, tcsh, ksh,
or a generic POSIX profile).`

	MsgRestoreLong = `Restore replaces the current PATH with a previous snapshot and rewrites
the shell startup file to match. Without --timestamp the most recent
snapshot is used; see the history command for available timestamps.`
)

// plural returns the English plural suffix for directory counts.
func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
