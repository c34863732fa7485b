package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	stdout      io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output for debugging.
// The root command calls this once flags and config are resolved.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriter redirects the package-level helpers. A nil w restores stdout.
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	stdout = w
}

// Success prints a success message with ✨ and green color.
//
// Example:
//
//	output.Success("Created project: myapp")
func Success(msg string) {
	fmt.Fprintln(stdout, successStyle.Render("✨ "+msg))
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(stdout, errorStyle.Render("✖ "+msg))
}

// Warning prints a warning in yellow.
func Warning(msg string) {
	fmt.Fprintln(stdout, warnStyle.Render("⚠ "+msg))
}

// Info prints an informational message in cyan.
//
// Example:
//
//	output.Info("Next steps:")
func Info(msg string) {
	fmt.Fprintln(stdout, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
//
// Example:
//
//	output.Step("cd myapp")
//	output.Step("yarn start")
func Step(msg string) {
	fmt.Fprintln(stdout, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stdout, stepStyle.Render("🔍 "+msg))
	}
}
