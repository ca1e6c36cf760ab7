package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/terraincognita07/potsy/internal/analytics"
	"github.com/terraincognita07/potsy/internal/settings"
)

var (
	colorPrimary      = lipgloss.Color("#6D5BD0")
	colorPrimaryLight = lipgloss.Color("#9A8CF0")
	colorText         = lipgloss.Color("#F2F3F3")
	colorMuted        = lipgloss.Color("240")

	colorSuccess = lipgloss.Color("#22C55E")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle   = lipgloss.NewStyle().Foreground(colorPrimaryLight).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "⚠"
	iconInfo    = "●"
)

// plainOutput disables colors and icons. Set from the screen reader and
// contrast preferences once settings are loaded.
var plainOutput bool

func applyDisplaySettings(current settings.Settings) {
	plainOutput = current.ScreenReaderOptimized
	if current.HighContrast {
		mutedStyle = lipgloss.NewStyle().Foreground(colorText)
		infoStyle = lipgloss.NewStyle().Foreground(colorPrimaryLight).Bold(true)
	}
	if current.Theme == settings.ThemeLight {
		lipgloss.SetHasDarkBackground(false)
	}
}

func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func styled() bool {
	return isTTY() && !plainOutput
}

func printStyled(w io.Writer, icon string, word string, style lipgloss.Style, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case plainOutput:
		fmt.Fprintf(w, "%s: %s\n", word, msg)
	case isTTY():
		fmt.Fprintf(w, "%s %s\n", style.Render(icon), msg)
	default:
		fmt.Fprintf(w, "%s %s\n", icon, msg)
	}
}

func printSuccess(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconSuccess, "Done", successStyle, format, args...)
}

func printError(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconError, "Error", errorStyle, format, args...)
}

func printWarning(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconWarning, "Warning", warningStyle, format, args...)
}

func printInfo(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconInfo, "Info", infoStyle, format, args...)
}

func printMuted(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if styled() {
		fmt.Fprintln(w, mutedStyle.Render(msg))
	} else {
		fmt.Fprintln(w, msg)
	}
}

// printField prints "label: value" with the label highlighted on a terminal.
func printField(w io.Writer, label string, format string, args ...interface{}) {
	value := fmt.Sprintf(format, args...)
	if styled() {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, value)
}

func renderBand(band analytics.Band) string {
	if !styled() {
		return band.String()
	}
	switch band {
	case analytics.Severe:
		return errorStyle.Render(band.String())
	case analytics.Moderate:
		return warningStyle.Render(band.String())
	default:
		return successStyle.Render(band.String())
	}
}
