package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	jsonOutput bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "potsyctl",
		Short: "Potsy - POTS symptom tracker CLI",
		Long: `potsyctl logs and reviews POTS symptoms.

With offline mode on, new entries stay on this device until "potsyctl sync"
pushes them to the potsy server. With offline mode off they go straight to
the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print diagnostic log lines")

	root.AddCommand(newLogCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newInsightsCmd(opts))
	root.AddCommand(newSyncCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	root.AddCommand(newTriggersCmd(opts))
	root.AddCommand(newCommonSymptomsCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newClearDataCmd(opts))
	return root
}

func configureLogging(stderr io.Writer, verbose bool) {
	log.SetFlags(0)
	if !verbose {
		log.SetOutput(io.Discard)
		return
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	log.SetOutput(stderr)
}
