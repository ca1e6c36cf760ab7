package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/analytics"
	"github.com/terraincognita07/potsy/internal/offline"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged symptoms, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.config.HTTPTimeout+5*time.Second)
			defer cancel()

			entries := searchEntries(a.writer.Symptoms(ctx), search)
			if root.jsonOutput {
				return outputAsJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				if search != "" {
					fmt.Fprintf(out, "No symptoms match %q.\n", search)
				} else {
					fmt.Fprintln(out, "No symptoms logged yet.")
				}
				return nil
			}
			for _, entry := range entries {
				outputEntryHuman(out, entry, a.location)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "Match name, notes or triggers")
	return cmd
}

// searchEntries filters and orders entries newest first while keeping their
// pending flags.
func searchEntries(entries []offline.Entry, query string) []offline.Entry {
	pending := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.Pending {
			pending[entry.ClientID] = true
		}
	}

	matched := analytics.SearchHistory(offline.SymptomsOf(entries), query)
	result := make([]offline.Entry, 0, len(matched))
	for _, symptom := range matched {
		result = append(result, offline.Entry{Symptom: symptom, Pending: pending[symptom.ClientID]})
	}
	return result
}
