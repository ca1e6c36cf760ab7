package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/offline"
)

func newTriggersCmd(root *rootOptions) *cobra.Command {
	return newCatalogCmd(root, "triggers", "List known trigger names", "No triggers recorded yet.",
		func(ctx context.Context, writer *offline.Writer) ([]string, error) { return writer.Triggers(ctx) })
}

func newCommonSymptomsCmd(root *rootOptions) *cobra.Command {
	return newCatalogCmd(root, "common-symptoms", "List suggested symptom names", "No symptom suggestions yet.",
		func(ctx context.Context, writer *offline.Writer) ([]string, error) { return writer.CommonSymptoms(ctx) })
}

// newCatalogCmd lists one name catalog, read from the server when reachable
// and from the local mirror otherwise.
func newCatalogCmd(root *rootOptions, use string, short string, empty string, list func(context.Context, *offline.Writer) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.config.HTTPTimeout+5*time.Second)
			defer cancel()

			names, err := list(ctx, a.writer)
			if err != nil {
				return err
			}
			if root.jsonOutput {
				return outputAsJSON(cmd, names)
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, empty)
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
