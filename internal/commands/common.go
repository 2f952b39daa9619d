// Package commands contains the CLI commands for the application
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/hay-kot/cdx/internal/core"
	"github.com/hay-kot/cdx/pkgs/printer"
)

func setupEnv(flags *core.Flags) (core.ConfigFile, error) {
	cfg, err := core.LoadConfig(flags.ConfigFilePath)
	if err != nil {
		return cfg, err
	}

	log.Debug().
		Str("home", cfg.Home).
		Str("home_env", cfg.HomeEnv).
		Msg("environment")

	return cfg, nil
}

// stdout returns the writer commands should print results to.
func stdout(ctx context.Context) io.Writer {
	if w, ok := printer.GetWriter(ctx); ok {
		return w
	}
	return os.Stdout
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// showSpinner reports whether progress may be drawn on the terminal.
var showSpinner = func() bool {
	return isTerminal(os.Stdout)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		// Fallback to a default width if unable to get terminal size
		return 80
	}
	return width
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	bracketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// createStyledHeader renders "-- [LABEL] name -----" filled to terminalWidth.
func createStyledHeader(label, name string, terminalWidth int) string {
	leftPart := fmt.Sprintf("%s %s%s%s %s ",
		dividerStyle.Render("--"),
		bracketStyle.Render("["),
		labelStyle.Render(label),
		bracketStyle.Render("]"),
		nameStyle.Render(name),
	)

	visibleLength := lipgloss.Width(leftPart)
	remainingSpace := max(terminalWidth-visibleLength, 0)

	divider := dividerStyle.Render(strings.Repeat("-", remainingSpace))
	return leftPart + divider
}
