package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/export"
	"github.com/terraincognita07/potsy/internal/offline"
	"github.com/terraincognita07/potsy/internal/remote"
)

var errNoExportData = errors.New("no symptoms to export")

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		outPath string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write symptoms to a CSV or PDF file",
		Long: `Write symptoms to a CSV or PDF file.

With offline mode on the file is built from this device's records, pending
ones included. Otherwise the CSV is downloaded from the server and the PDF
is built from the merged symptom list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "csv" && format != "pdf" {
				return fmt.Errorf("unknown format %q: use csv or pdf", format)
			}

			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.config.HTTPTimeout+5*time.Second)
			defer cancel()

			if outPath == "" {
				outPath = export.Filename(a.now().In(a.location), format)
			}

			var fill func(io.Writer) error
			switch {
			case format == "pdf":
				symptoms := offline.SymptomsOf(a.writer.Symptoms(ctx))
				if len(symptoms) == 0 {
					return errNoExportData
				}
				fill = func(w io.Writer) error {
					return export.PDF(w, symptoms, a.location, a.now())
				}
			case a.settings.OfflineMode():
				payload, err := localCSV(ctx, a)
				if err != nil {
					return err
				}
				fill = func(w io.Writer) error {
					_, err := w.Write(payload)
					return err
				}
			default:
				fill = func(w io.Writer) error {
					_, err := a.remote.ExportCSV(ctx, w)
					if errors.Is(err, remote.ErrNotFound) {
						return errNoExportData
					}
					return err
				}
			}

			size, err := writeExportFile(outPath, fill)
			if err != nil {
				return err
			}

			if root.jsonOutput {
				return outputAsJSON(cmd, map[string]any{"path": outPath, "format": format, "bytes": size})
			}
			printSuccess(cmd.OutOrStdout(), "Exported to %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default potsy-symptoms-<date>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format: csv or pdf")
	return cmd
}

func localCSV(ctx context.Context, a *app) ([]byte, error) {
	symptoms := offline.SymptomsOf(a.writer.Symptoms(ctx))
	if len(symptoms) == 0 {
		return nil, errNoExportData
	}
	return export.CSV(symptoms, a.location)
}

// writeExportFile fills a temp file next to path and renames it into place,
// so a failed export never leaves a partial file behind.
func writeExportFile(path string, fill func(io.Writer) error) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".potsy-export-*")
	if err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := fill(tmp); err != nil {
		tmp.Close()
		return 0, err
	}
	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	return info.Size(), nil
}
