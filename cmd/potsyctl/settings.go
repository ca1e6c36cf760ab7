package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/settings"
)

func newSettingsCmd(root *rootOptions) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change client settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, store, err := loadSettings()
			if err != nil {
				return err
			}
			return outputSettings(cmd, root, store.Get())
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: fmt.Sprintf(`Change one setting and save it.

Keys: %s

Example:
  potsyctl settings set offlineMode false
  potsyctl settings set remoteURL http://potsy.local:8080`, strings.Join(settings.Keys(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadSettings()
			if err != nil {
				return err
			}
			updated, err := store.Set(args[0], args[1])
			if err != nil {
				return err
			}
			return outputSettings(cmd, root, updated)
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, store, err := loadSettings()
			if err != nil {
				return err
			}
			defaults, err := store.Reset()
			if err != nil {
				return err
			}
			return outputSettings(cmd, root, defaults)
		},
	}

	settingsCmd.AddCommand(show, set, reset)
	return settingsCmd
}

func outputSettings(cmd *cobra.Command, root *rootOptions, current settings.Settings) error {
	if root.jsonOutput {
		return outputAsJSON(cmd, current)
	}
	out := cmd.OutOrStdout()
	printField(out, "theme", "%s", current.Theme)
	printField(out, "offlineMode", "%t", current.OfflineMode)
	printField(out, "highContrast", "%t", current.HighContrast)
	printField(out, "largeText", "%t", current.LargeText)
	printField(out, "screenReaderOptimized", "%t", current.ScreenReaderOptimized)
	printField(out, "remoteURL", "%s", current.RemoteURL)
	return nil
}
