package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/analytics"
	"github.com/terraincognita07/potsy/internal/models"
	"github.com/terraincognita07/potsy/internal/offline"
	"github.com/terraincognita07/potsy/internal/remote"
)

const displayDateLayout = "2006-01-02 15:04"

func outputAsJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputError(w io.Writer, err error) {
	printError(w, "%s", describeError(err))
}

// describeError turns client errors into a single readable line. Failed
// symptom writes keep the "could not save" prefix naming where the write went.
func describeError(err error) string {
	var remoteErr *remote.Error
	switch {
	case errors.Is(err, remote.ErrUnreachable):
		return fmt.Sprintf("%v (is the potsy server running? try \"potsyctl settings set offlineMode true\")", err)
	case errors.As(err, &remoteErr) && remoteErr.Message != "":
		if errors.Is(err, offline.ErrRemoteWrite) {
			return offline.ErrRemoteWrite.Error() + ": " + remoteErr.Message
		}
		return remoteErr.Message
	}
	return err.Error()
}

func formatDuration(symptom models.Symptom) string {
	return strconv.FormatFloat(symptom.Duration, 'f', -1, 64) + " " + symptom.DurationType
}

func outputEntryHuman(w io.Writer, entry offline.Entry, location *time.Location) {
	band := analytics.Classify(entry.Severity)
	line := fmt.Sprintf("%s  %-20s %2d/10 %s  %s",
		entry.Date.In(location).Format(displayDateLayout),
		entry.Name,
		entry.Severity,
		renderBand(band),
		formatDuration(entry.Symptom),
	)
	if entry.Pending {
		line += "  [pending sync]"
	}
	fmt.Fprintln(w, line)

	if len(entry.Triggers) > 0 {
		printMuted(w, "    triggers: %s", strings.Join(entry.Triggers, ", "))
	}
	if entry.Notes != nil {
		printMuted(w, "    notes: %s", *entry.Notes)
	}
	if len(entry.ReliefMethods) > 0 {
		relief := strings.Join(entry.ReliefMethods, ", ")
		if entry.ReliefEffectiveness != nil {
			relief += fmt.Sprintf(" (%d/10)", *entry.ReliefEffectiveness)
		}
		printMuted(w, "    relief: %s", relief)
	}
}

func outputNameCounts(w io.Writer, title string, counts []analytics.NameCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(w)
	printInfo(w, "%s", title)
	for _, count := range counts {
		fmt.Fprintf(w, "  %-24s %d\n", count.Name, count.Count)
	}
}
