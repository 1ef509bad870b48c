package main

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathmaster/pkg/backup"
	"github.com/arthur-debert/pathmaster/pkg/config"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/pathenv"
	"github.com/arthur-debert/pathmaster/pkg/shell"
	"github.com/arthur-debert/pathmaster/pkg/style"
)

// snapshotTimestampLayout matches the 14-digit names the backup store uses.
const snapshotTimestampLayout = "20060102150405"

// persist writes entries into the shell startup file. On failure the
// session PATH is already updated, so the caller gets a distinct
// "session only" warning rather than a silent abort.
func persist(cmd *cobra.Command, settings *config.Settings, entries []string) error {
	handler := shell.Detect(os.Getenv("SHELL"))
	updater := shell.NewUpdater(handler, shell.WithConfigPath(settings.Shell.ConfigFile))

	if err := updater.Update(entries); err != nil {
		cmd.PrintErrln(style.Render(style.WarningStyle, MsgSessionOnly))
		return err
	}
	cmd.Printf(MsgConfigSavedTo, updater.ConfigPath())
	return nil
}

// snapshotCurrentPath records the current PATH before any mutation.
func snapshotCurrentPath(settings *config.Settings) error {
	store := backup.NewStore(settings.Backup.Dir)
	_, err := store.Create(os.Getenv("PATH"))
	return err
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <directory>...",
		Aliases: []string{"a"},
		Short:   MsgAddShort,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if err := snapshotCurrentPath(settings); err != nil {
				return err
			}

			entries := pathenv.Entries()
			present := make(map[string]bool, len(entries))
			for _, e := range entries {
				present[e] = true
			}

			added := 0
			for _, dir := range args {
				expanded := pathenv.Expand(dir)
				if present[expanded] {
					continue
				}
				if !pathenv.IsValidEntry(expanded) {
					cmd.PrintErrf(MsgMissingDirFormat, expanded)
				}
				entries = append(entries, expanded)
				present[expanded] = true
				added++
			}

			if added == 0 {
				cmd.Println(MsgNothingToAdd)
				return nil
			}

			if err := pathenv.Set(entries); err != nil {
				return err
			}
			if err := persist(cmd, settings, entries); err != nil {
				return err
			}
			cmd.Printf(MsgAddedFormat, added, plural(added))
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <directory>...",
		Aliases: []string{"remove", "d"},
		Short:   MsgDeleteShort,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if err := snapshotCurrentPath(settings); err != nil {
				return err
			}

			doomed := make(map[string]bool, len(args))
			for _, dir := range args {
				doomed[pathenv.Expand(dir)] = true
			}

			entries := pathenv.Entries()
			var kept []string
			for _, entry := range entries {
				if !doomed[entry] {
					kept = append(kept, entry)
				}
			}

			removed := len(entries) - len(kept)
			if removed == 0 {
				cmd.Println(MsgNoneDeleted)
				return nil
			}

			if err := pathenv.Set(kept); err != nil {
				return err
			}
			if err := persist(cmd, settings, kept); err != nil {
				return err
			}
			cmd.Printf(MsgDeletedFormat, removed, plural(removed))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(MsgListHeader)
			for _, entry := range pathenv.Entries() {
				cmd.Println("- " + style.Render(style.PathStyle, entry))
			}
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Aliases: []string{"c"},
		Short:   MsgCheckShort,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			validation := pathenv.Validate(pathenv.Entries())
			if len(validation.Missing) == 0 {
				cmd.Println(style.Render(style.SuccessStyle, MsgAllValid))
				return
			}
			cmd.Println(MsgInvalidHeader)
			for _, entry := range validation.Missing {
				cmd.Println("  " + style.Render(style.ErrorStyle, entry))
			}
		},
	}
}

func newFlushCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "flush",
		Aliases: []string{"f"},
		Short:   MsgFlushShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if err := snapshotCurrentPath(settings); err != nil {
				return err
			}

			validation := pathenv.Validate(pathenv.Entries())
			if len(validation.Missing) == 0 {
				cmd.Println(MsgNoInvalidPaths)
				return nil
			}

			if err := pathenv.Set(validation.Existing); err != nil {
				return err
			}
			if err := persist(cmd, settings, validation.Existing); err != nil {
				return err
			}
			cmd.Printf(MsgFlushedFormat, len(validation.Missing))
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "history",
		Aliases: []string{"y"},
		Short:   MsgHistoryShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			store := backup.NewStore(settings.Backup.Dir)
			snapshots, err := store.List()
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				cmd.Println(MsgNoBackups)
				return nil
			}

			if limit := settings.Backup.HistoryLimit; limit > 0 && len(snapshots) > limit {
				snapshots = snapshots[len(snapshots)-limit:]
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Timestamp", "Created", "Entries"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
			})
			for _, snap := range snapshots {
				created := snap.Timestamp
				if t, err := time.ParseInLocation(snapshotTimestampLayout, snap.Timestamp, time.Local); err == nil {
					created = t.Format("2006-01-02 15:04:05")
				}
				table.Append([]string{snap.Timestamp, created, strconv.Itoa(len(snap.Entries()))})
			}
			table.Render()
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	var timestamp string

	cmd := &cobra.Command{
		Use:     "restore",
		Aliases: []string{"r"},
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			store := backup.NewStore(settings.Backup.Dir)
			var snap *backup.Snapshot
			if timestamp != "" {
				snap, err = store.Find(timestamp)
			} else {
				snap, err = store.Latest()
			}
			if err != nil {
				return err
			}

			restoreLogger := logging.GetLogger("restore")
			restoreLogger.Info().
				Str("timestamp", snap.Timestamp).
				Msg("Restoring PATH from snapshot")

			entries := snap.Entries()
			if err := pathenv.Set(entries); err != nil {
				return err
			}
			if err := persist(cmd, settings, entries); err != nil {
				return err
			}
			cmd.Printf(MsgRestoredFormat, snap.Timestamp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&timestamp, "timestamp", "t", "", MsgFlagTimestamp)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				cmd.Print(string(config.DefaultTOML()))
				return nil
			}

			settings, err := config.Load()
			if err != nil {
				return err
			}
			out, err := toml.Marshal(settings)
			if err != nil {
				return err
			}
			cmd.Print(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	return cmd
}
