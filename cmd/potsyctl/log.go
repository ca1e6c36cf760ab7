package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/models"
	"github.com/terraincognita07/potsy/internal/offline"
)

type logOptions struct {
	name                string
	severity            int
	duration            float64
	durationType        string
	triggers            []string
	notes               string
	relief              []string
	reliefEffectiveness int
	date                string
}

func newLogCmd(root *rootOptions) *cobra.Command {
	opts := &logOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a symptom",
		Long: `Log a symptom episode.

Example:
  potsyctl log --name Dizziness --severity 6 --duration 20 --duration-type minutes \
    --trigger "Standing up" --trigger Heat --relief Fluids --relief-effectiveness 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			input, err := opts.input(cmd, a.location)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.config.HTTPTimeout+5*time.Second)
			defer cancel()

			result, err := a.writer.Submit(ctx, input)
			if err != nil {
				return err
			}
			if root.jsonOutput {
				return outputAsJSON(cmd, offline.Entry{
					Symptom: result.Symptom,
					Pending: result.Destination == offline.DestinationLocal,
				})
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.name, "name", "n", "", "Symptom name (required)")
	flags.IntVarP(&opts.severity, "severity", "s", 0, "Severity from 1 to 10 (required)")
	flags.Float64VarP(&opts.duration, "duration", "d", 0, "How long it lasted (required)")
	flags.StringVar(&opts.durationType, "duration-type", models.DurationMinutes, "minutes, hours or days")
	flags.StringArrayVarP(&opts.triggers, "trigger", "t", nil, "Trigger (repeatable)")
	flags.StringVar(&opts.notes, "notes", "", "Free-form notes")
	flags.StringArrayVar(&opts.relief, "relief", nil, "Relief method (repeatable)")
	flags.IntVar(&opts.reliefEffectiveness, "relief-effectiveness", 0, "How well relief worked, 1 to 10")
	flags.StringVar(&opts.date, "date", "", "When it happened: YYYY-MM-DD, \"YYYY-MM-DD HH:MM\" or RFC3339 (default now)")
	return cmd
}

// input maps the flags onto a SymptomInput. Unset numeric flags stay nil so
// validation reports them as missing.
func (opts *logOptions) input(cmd *cobra.Command, location *time.Location) (models.SymptomInput, error) {
	flags := cmd.Flags()
	input := models.SymptomInput{
		Name:          opts.name,
		DurationType:  opts.durationType,
		Triggers:      opts.triggers,
		ReliefMethods: opts.relief,
	}
	if flags.Changed("severity") {
		severity := opts.severity
		input.Severity = &severity
	}
	if flags.Changed("duration") {
		duration := opts.duration
		input.Duration = &duration
	}
	if flags.Changed("relief-effectiveness") {
		effectiveness := opts.reliefEffectiveness
		input.ReliefEffectiveness = &effectiveness
	}
	if strings.TrimSpace(opts.notes) != "" {
		notes := opts.notes
		input.Notes = &notes
	}
	if strings.TrimSpace(opts.date) != "" {
		date, err := parseDateFlag(opts.date, location)
		if err != nil {
			return models.SymptomInput{}, err
		}
		input.Date = &date
	}
	return input, nil
}

func parseDateFlag(raw string, location *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	for _, layout := range []string{displayDateLayout, time.DateOnly} {
		if parsed, err := time.ParseInLocation(layout, value, location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, \"YYYY-MM-DD HH:MM\" or RFC3339", raw)
}
