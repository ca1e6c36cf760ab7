package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/offline"
)

func newClearDataCmd(root *rootOptions) *cobra.Command {
	var (
		confirm      bool
		symptomsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "clear-data",
		Short: "Remove all data stored on this device",
		Long: `Remove the symptoms, trigger and common-symptom lists and the last sync
time kept on this device. Records on the server are not touched.

Pending records that were never synced are lost. Run "potsyctl sync" first
to keep them.

Example:
  potsyctl clear-data --yes                  # Clear everything
  potsyctl clear-data --yes --symptoms-only  # Keep the catalogs and sync time`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			pending := 0
			for _, record := range a.cache.Symptoms(ctx) {
				if record.Pending() {
					pending++
				}
			}
			if !confirm {
				return fmt.Errorf("clear-data removes every local record (%d not yet synced); rerun with --yes", pending)
			}

			if symptomsOnly {
				err = a.cache.ClearSymptoms(ctx)
			} else {
				err = a.cache.ClearAll(ctx)
			}
			if err != nil {
				return fmt.Errorf("could not clear local data: %w", err)
			}
			a.writer.Queries().Invalidate(offline.QuerySymptoms, offline.QueryTriggers, offline.QueryCommonSymptoms)

			if root.jsonOutput {
				return outputAsJSON(cmd, map[string]any{"cleared": true, "symptomsOnly": symptomsOnly, "pendingDropped": pending})
			}
			printSuccess(cmd.OutOrStdout(), "Cleared local data")
			if pending > 0 {
				printWarning(cmd.OutOrStdout(), "%d unsynced records were removed", pending)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&confirm, "yes", "y", false, "Confirm removing local data")
	cmd.Flags().BoolVar(&symptomsOnly, "symptoms-only", false, "Only reset the symptom list")
	return cmd
}
