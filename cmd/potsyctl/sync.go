package main

import (
	"context"
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/reconcile"
)

func newSyncCmd(root *rootOptions) *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Push symptoms saved while offline to the server",
		Long: `Push every pending local symptom to the potsy server.

Pushed records stay in the local cache, marked as synced. Use
"potsyctl sync prune" to remove them.

Example:
  potsyctl sync          # Push pending records
  potsyctl sync status   # Show pending and synced counts
  potsyctl sync prune    # Drop synced records from this device`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			report, err := a.reconciler.Run(ctx)
			var syncErr *reconcile.SyncError
			if err != nil && !errors.As(err, &syncErr) {
				return err
			}
			if root.jsonOutput {
				if outErr := outputAsJSON(cmd, report); outErr != nil {
					return outErr
				}
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case report.NothingToSync:
				printInfo(out, "Nothing to sync")
			case syncErr != nil:
				printWarning(out, "Synced %d of %d records", report.Pushed, report.Pushed+report.Failed)
			default:
				printSuccess(out, "Synced %d records", report.Pushed)
			}
			if report.Duplicates > 0 {
				printMuted(out, "%d were already on the server", report.Duplicates)
			}
			printMuted(out, "run %s", report.RunID)
			return err
		},
	}

	syncCmd.AddCommand(newSyncStatusCmd(root), newSyncPruneCmd(root))
	return syncCmd
}

func newSyncStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pending and synced record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			status, err := a.reconciler.Status(cmd.Context())
			if err != nil {
				return err
			}
			if root.jsonOutput {
				return outputAsJSON(cmd, status)
			}

			out := cmd.OutOrStdout()
			printField(out, "Offline mode", "%t", a.settings.OfflineMode())
			printField(out, "Pending", "%d", status.Pending)
			printField(out, "Synced", "%d", status.Synced)
			if status.LastSync == nil {
				printField(out, "Last synced", "never")
			} else {
				printField(out, "Last synced", "%s", humanize.Time(*status.LastSync))
			}
			return nil
		},
	}
}

func newSyncPruneCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove synced records from the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.reconciler.Prune(cmd.Context())
			if err != nil {
				return err
			}
			if root.jsonOutput {
				return outputAsJSON(cmd, map[string]int{"removed": removed})
			}
			printSuccess(cmd.OutOrStdout(), "Removed %d synced records", removed)
			return nil
		},
	}
}
