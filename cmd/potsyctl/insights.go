package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/analytics"
	"github.com/terraincognita07/potsy/internal/offline"
)

func newInsightsCmd(root *rootOptions) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize symptoms over a week, month or quarter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := analytics.ParsePeriod(period)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.config.HTTPTimeout+5*time.Second)
			defer cancel()

			records := offline.SymptomsOf(a.writer.Symptoms(ctx))
			insights, err := analytics.BuildInsights(records, parsed, a.now(), a.location)
			if err != nil {
				return err
			}
			if root.jsonOutput {
				return outputAsJSON(cmd, insights)
			}
			outputInsightsHuman(cmd, insights, a.location)
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", string(analytics.PeriodWeek), "week, month or quarter")
	return cmd
}

func outputInsightsHuman(cmd *cobra.Command, insights analytics.Insights, location *time.Location) {
	out := cmd.OutOrStdout()

	printInfo(out, "Insights for the last %s (%s to %s)", insights.Period,
		insights.From.In(location).Format(time.DateOnly), insights.To.In(location).Format(time.DateOnly))
	printField(out, "Episodes", "%d", insights.Total)
	if insights.Total == 0 {
		return
	}
	printField(out, "Average severity", "%.1f", insights.AverageSeverity)
	printField(out, "Bands", "%s %d, %s %d, %s %d",
		renderBand(analytics.Mild), insights.Bands.Mild,
		renderBand(analytics.Moderate), insights.Bands.Moderate,
		renderBand(analytics.Severe), insights.Bands.Severe)

	outputNameCounts(out, "Most common symptoms", insights.TopSymptoms)
	outputNameCounts(out, "Most common triggers", insights.TopTriggers)

	fmt.Fprintln(out)
	printInfo(out, "This week")
	for _, bucket := range insights.Weekly {
		fmt.Fprintf(out, "  %s %s\n", bucket.Label, strings.Repeat("#", bucket.Total()))
	}
}
